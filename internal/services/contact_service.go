package services

import (
	"context"

	"portfolio_api/internal/models"
	"portfolio_api/internal/repositories"
)

type ContactService struct {
	messageRepo *repositories.ContactMessageRepository
}

func NewContactService(messageRepo *repositories.ContactMessageRepository) *ContactService {
	return &ContactService{
		messageRepo: messageRepo,
	}
}

type ContactRequest struct {
	Name    string  `json:"name" binding:"required,notblank"`
	Email   string  `json:"email" binding:"required,email"`
	Subject *string `json:"subject,omitempty"`
	Message string  `json:"message" binding:"required"`
}

// SubmitMessage stores the message and returns its identifier.
func (s *ContactService) SubmitMessage(ctx context.Context, req ContactRequest) (string, error) {
	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	return s.messageRepo.Create(ctx, message)
}
