package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/KohanaIshitsuka/recipe-atelier/config"
	"github.com/KohanaIshitsuka/recipe-atelier/internal/cache"
	"github.com/KohanaIshitsuka/recipe-atelier/internal/middleware"
	"github.com/KohanaIshitsuka/recipe-atelier/internal/service"
	"github.com/KohanaIshitsuka/recipe-atelier/internal/web"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	cfg    *config.Config
}

// New wires the services and handlers into a ready-to-start server.
// redisClient may be nil; the page cache then degrades to no caching.
func New(cfg *config.Config, db *gorm.DB, storage *config.S3Config, redisClient *redis.Client) *Server {
	router := gin.Default()
	router.Use(cors.Default())

	authService := service.NewAuthService(db, cfg.SessionSecret)
	recipeService := service.NewRecipeService(db)
	imageService := service.NewImageService(storage)
	pages := cache.NewPages(redisClient)

	router.Use(middleware.CurrentUser(authService))

	handler := web.NewHandler(recipeService, authService, imageService, pages)
	handler.RegisterRoutes(router)

	return &Server{
		router: router,
		cfg:    cfg,
	}
}

// Start runs the server until Shutdown is called.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:         s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
