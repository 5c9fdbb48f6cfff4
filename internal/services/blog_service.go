package services

import (
	"context"
	"sort"

	"portfolio_api/internal/models"
	"portfolio_api/internal/repositories"
)

type BlogService struct {
	postRepo *repositories.BlogPostRepository
}

func NewBlogService(postRepo *repositories.BlogPostRepository) *BlogService {
	return &BlogService{
		postRepo: postRepo,
	}
}

// ListPosts returns every post, newest first. Undated posts come last and
// keep their store order.
func (s *BlogService) ListPosts(ctx context.Context) ([]models.BlogPost, error) {
	posts, err := s.postRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedBefore(&posts[j])
	})

	return posts, nil
}

func (s *BlogService) GetPost(ctx context.Context, slug string) (*models.BlogPost, error) {
	return s.postRepo.GetBySlug(ctx, slug)
}
