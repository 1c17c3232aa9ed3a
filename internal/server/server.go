package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pantrychef/backend/config"
	"github.com/pantrychef/backend/internal/api"
	"github.com/pantrychef/backend/internal/middleware"
	"github.com/pantrychef/backend/internal/service"
	"github.com/pantrychef/backend/internal/spoonacular"
	"github.com/pantrychef/backend/pkg/logger"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
}

// New creates a new server instance, wiring the services and routes
func New(cfg *config.Config, db *gorm.DB) *Server {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	authService := service.NewAuthService(db, cfg.JWTSecret)
	favoriteService := service.NewFavoriteService(db)
	provider := spoonacular.NewClient(cfg.SpoonacularAPIKey)

	if cfg.SpoonacularAPIKey == "" {
		logger.Warn().Msg("SPOONACULAR_API_KEY is not set; recipe browsing routes will return errors")
	}

	// Register routes
	apiGroup := router.Group("/api")
	api.NewRecipeHandler(provider).RegisterRoutes(apiGroup)
	api.NewFavoriteHandler(favoriteService).RegisterRoutes(apiGroup)
	api.NewAuthHandler(authService).RegisterRoutes(apiGroup)
	api.NewUserHandler(authService).RegisterRoutes(apiGroup)

	// Static browser client
	router.StaticFile("/", "./public/index.html")
	router.StaticFile("/app.js", "./public/app.js")
	router.StaticFile("/styles.css", "./public/styles.css")

	return &Server{
		router: router,
		db:     db,
		http: &http.Server{
			Addr:    ":" + cfg.ServerPort,
			Handler: router,
		},
	}
}

// Router exposes the gin engine, mainly for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the server and blocks until it stops
func (s *Server) Start() error {
	logger.Info().Str("addr", s.http.Addr).Msg("server listening")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
