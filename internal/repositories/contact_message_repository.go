package repositories

import (
	"context"
	"fmt"

	"portfolio_api/internal/database"
	"portfolio_api/internal/models"
)

type ContactMessageRepository struct {
	messages collection
}

func NewContactMessageRepository(store database.DocumentStore) *ContactMessageRepository {
	return &ContactMessageRepository{messages: collection{store: store, name: ContactMessageCollection}}
}

func (r *ContactMessageRepository) Create(ctx context.Context, message *models.ContactMessage) (string, error) {
	message.Prepare()

	id, err := r.messages.create(ctx, message)
	if err != nil {
		return "", fmt.Errorf("failed to save contact message: %w", err)
	}
	message.ID = id
	return id, nil
}
