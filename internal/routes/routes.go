package routes

import (
	"portfolio_api/internal/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine, statusHandler *handlers.StatusHandler, projectHandler *handlers.ProjectHandler, blogHandler *handlers.BlogHandler, contactHandler *handlers.ContactHandler) {
	router.GET("/", statusHandler.Root)
	router.GET("/test", statusHandler.TestDatabase)
	router.NoRoute(statusHandler.NotFound)

	api := router.Group("/api")
	api.GET("/hello", statusHandler.Hello)

	projectRoutes := NewProjectRoutes(projectHandler)
	projectRoutes.RegisterRoutes(api)

	blogRoutes := NewBlogRoutes(blogHandler)
	blogRoutes.RegisterRoutes(api)

	contactRoutes := NewContactRoutes(contactHandler)
	contactRoutes.RegisterRoutes(api)
}
