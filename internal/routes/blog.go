package routes

import (
	"portfolio_api/internal/handlers"

	"github.com/gin-gonic/gin"
)

type BlogRoutes struct {
	handler *handlers.BlogHandler
}

func NewBlogRoutes(handler *handlers.BlogHandler) *BlogRoutes {
	return &BlogRoutes{handler: handler}
}

func (r *BlogRoutes) RegisterRoutes(router *gin.RouterGroup) {
	blogs := router.Group("/blogs")
	{
		blogs.GET("", r.handler.ListPosts)
		blogs.GET("/:slug", r.handler.GetPost)
	}
}
