package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio_api/internal/responses"
	"portfolio_api/internal/services"
)

type BlogHandler struct {
	blogService *services.BlogService
	logger      *zap.Logger
}

func NewBlogHandler(blogService *services.BlogService, logger *zap.Logger) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
		logger:      logger,
	}
}

// ListPosts handles GET /api/blogs
func (h *BlogHandler) ListPosts(c *gin.Context) {
	posts, err := h.blogService.ListPosts(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses.Items(c, http.StatusOK, posts)
}

// GetPost handles GET /api/blogs/:slug
func (h *BlogHandler) GetPost(c *gin.Context) {
	post, err := h.blogService.GetPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondLookupError(c, h.logger, err, "Post not found")
		return
	}

	responses.JSON(c, http.StatusOK, post)
}
