package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio_api/internal/config"
	"portfolio_api/internal/database"
	"portfolio_api/internal/handlers"
	"portfolio_api/internal/middlewares"
	"portfolio_api/internal/repositories"
	"portfolio_api/internal/routes"
	"portfolio_api/internal/services"
)

// Server holds the wired application. store may be nil when no database
// could be reached; handlers then answer with "database not available".
type Server struct {
	cfg    *config.Config
	store  database.DocumentStore
	logger *zap.Logger
	seeder *services.SeedService
	router *gin.Engine
}

func NewServer(cfg *config.Config, store database.DocumentStore, logger *zap.Logger) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Dependency injection
	projectRepo := repositories.NewProjectRepository(store)
	postRepo := repositories.NewBlogPostRepository(store)
	messageRepo := repositories.NewContactMessageRepository(store)

	statusService := services.NewStatusService(store, cfg.DatabaseURL != "", cfg.DatabaseName != "")
	projectService := services.NewProjectService(projectRepo)
	blogService := services.NewBlogService(postRepo)
	contactService := services.NewContactService(messageRepo)

	statusHandler := handlers.NewStatusHandler(statusService)
	projectHandler := handlers.NewProjectHandler(projectService, logger)
	blogHandler := handlers.NewBlogHandler(blogService, logger)
	contactHandler := handlers.NewContactHandler(contactService, logger)

	router := gin.New()
	router.Use(middlewares.Recovery(logger))
	router.Use(middlewares.RequestLogger(logger))
	router.Use(middlewares.CORS())
	routes.RegisterRoutes(router, statusHandler, projectHandler, blogHandler, contactHandler)

	return &Server{
		cfg:    cfg,
		store:  store,
		logger: logger,
		seeder: services.NewSeedService(projectRepo, postRepo, logger),
		router: router,
	}
}

// Seed inserts sample content into empty collections. Call it before serving.
func (s *Server) Seed(ctx context.Context) error {
	return s.seeder.Seed(ctx)
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// HTTPServer returns the configured listener for the router.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// Close releases the store connection, if any.
func (s *Server) Close(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	return s.store.Close(ctx)
}
