package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio_api/internal/responses"
	"portfolio_api/internal/services"
)

type ContactHandler struct {
	contactService *services.ContactService
	logger         *zap.Logger
}

func NewContactHandler(contactService *services.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// SubmitMessage handles POST /api/contact
func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req services.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	id, err := h.contactService.SubmitMessage(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses.Stored(c, http.StatusOK, id)
}
