package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"portfolio_api/internal/repositories"
)

// SeedService fills the project and blogpost collections with sample content
// when they are empty. It never touches a collection that already has data.
type SeedService struct {
	projectRepo *repositories.ProjectRepository
	postRepo    *repositories.BlogPostRepository
	logger      *zap.Logger
	now         func() time.Time
}

func NewSeedService(
	projectRepo *repositories.ProjectRepository,
	postRepo *repositories.BlogPostRepository,
	logger *zap.Logger,
) *SeedService {
	return &SeedService{
		projectRepo: projectRepo,
		postRepo:    postRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// Seed runs before the server accepts requests. Without a store it does nothing.
func (s *SeedService) Seed(ctx context.Context) error {
	if !s.projectRepo.Available() || !s.postRepo.Available() {
		s.logger.Warn("database not available, skipping seed")
		return nil
	}

	if err := s.seedProjects(ctx); err != nil {
		return err
	}
	return s.seedPosts(ctx)
}

func (s *SeedService) seedProjects(ctx context.Context) error {
	n, err := s.projectRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count projects: %w", err)
	}
	if n > 0 {
		return nil
	}

	projects := SampleProjects()
	for i := range projects {
		if _, err := s.projectRepo.Create(ctx, &projects[i]); err != nil {
			return fmt.Errorf("failed to seed project %q: %w", projects[i].Title, err)
		}
	}

	s.logger.Info("seeded projects", zap.Int("count", len(projects)))
	return nil
}

func (s *SeedService) seedPosts(ctx context.Context) error {
	n, err := s.postRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count blog posts: %w", err)
	}
	if n > 0 {
		return nil
	}

	posts := SamplePosts(s.now())
	for i := range posts {
		if _, err := s.postRepo.Create(ctx, &posts[i]); err != nil {
			return fmt.Errorf("failed to seed blog post %q: %w", posts[i].Slug, err)
		}
	}

	s.logger.Info("seeded blog posts", zap.Int("count", len(posts)))
	return nil
}
