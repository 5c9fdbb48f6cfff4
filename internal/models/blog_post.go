package models

import "time"

// BlogPost is looked up by Slug, which writers keep unique.
type BlogPost struct {
	ID          string     `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string     `json:"title" bson:"title"`
	Slug        string     `json:"slug" bson:"slug"`
	Excerpt     string     `json:"excerpt" bson:"excerpt"`
	Content     string     `json:"content" bson:"content"`
	Tags        []string   `json:"tags" bson:"tags"`
	CoverImage  string     `json:"cover_image" bson:"cover_image"`
	PublishedAt *time.Time `json:"published_at,omitempty" bson:"published_at,omitempty"`
}

func (b *BlogPost) Prepare() {
	if b.Tags == nil {
		b.Tags = []string{}
	}
}

// PublishedBefore orders posts newest first. Posts without a timestamp
// count as the earliest possible time.
func (b *BlogPost) PublishedBefore(other *BlogPost) bool {
	if other.PublishedAt == nil {
		return b.PublishedAt != nil
	}
	if b.PublishedAt == nil {
		return false
	}
	return b.PublishedAt.After(*other.PublishedAt)
}
