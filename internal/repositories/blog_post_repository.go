package repositories

import (
	"context"
	"fmt"

	"portfolio_api/internal/database"
	"portfolio_api/internal/models"
)

type BlogPostRepository struct {
	posts collection
}

func NewBlogPostRepository(store database.DocumentStore) *BlogPostRepository {
	return &BlogPostRepository{posts: collection{store: store, name: BlogPostCollection}}
}

func (r *BlogPostRepository) Available() bool {
	return r.posts.available()
}

func (r *BlogPostRepository) Create(ctx context.Context, post *models.BlogPost) (string, error) {
	post.Prepare()

	id, err := r.posts.create(ctx, post)
	if err != nil {
		return "", fmt.Errorf("failed to create blog post: %w", err)
	}
	post.ID = id
	return id, nil
}

func (r *BlogPostRepository) Count(ctx context.Context) (int64, error) {
	return r.posts.count(ctx)
}

// GetAll returns posts in store order.
func (r *BlogPostRepository) GetAll(ctx context.Context) ([]models.BlogPost, error) {
	posts, err := list[models.BlogPost](ctx, r.posts, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	for i := range posts {
		posts[i].Prepare()
	}
	return posts, nil
}

func (r *BlogPostRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	doc, err := r.posts.findOne(ctx, database.Filter{"slug": slug})
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post %q: %w", slug, err)
	}

	var post models.BlogPost
	if err := database.Decode(doc, &post); err != nil {
		return nil, err
	}
	post.Prepare()

	return &post, nil
}
