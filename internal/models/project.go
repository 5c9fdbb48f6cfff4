package models

// Project is a portfolio entry. Projects are seeded and never updated.
type Project struct {
	ID          string   `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description" bson:"description"`
	Tags        []string `json:"tags" bson:"tags"`
	Github      *string  `json:"github" bson:"github"`
	Live        *string  `json:"live" bson:"live"`
	Image       string   `json:"image" bson:"image"`
}

func (p *Project) Prepare() {
	if p.Tags == nil {
		p.Tags = []string{}
	}
}
