package repositories

import (
	"context"
	"fmt"

	"portfolio_api/internal/database"
	"portfolio_api/internal/models"
)

type ProjectRepository struct {
	projects collection
}

func NewProjectRepository(store database.DocumentStore) *ProjectRepository {
	return &ProjectRepository{projects: collection{store: store, name: ProjectCollection}}
}

func (r *ProjectRepository) Available() bool {
	return r.projects.available()
}

func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) (string, error) {
	project.Prepare()

	id, err := r.projects.create(ctx, project)
	if err != nil {
		return "", fmt.Errorf("failed to create project: %w", err)
	}
	project.ID = id
	return id, nil
}

func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	return r.projects.count(ctx)
}

func (r *ProjectRepository) GetAll(ctx context.Context) ([]models.Project, error) {
	projects, err := list[models.Project](ctx, r.projects, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	for i := range projects {
		projects[i].Prepare()
	}
	return projects, nil
}
