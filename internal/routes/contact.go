package routes

import (
	"portfolio_api/internal/handlers"

	"github.com/gin-gonic/gin"
)

type ContactRoutes struct {
	handler *handlers.ContactHandler
}

func NewContactRoutes(handler *handlers.ContactHandler) *ContactRoutes {
	return &ContactRoutes{handler: handler}
}

func (r *ContactRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/contact", r.handler.SubmitMessage)
}
