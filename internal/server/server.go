package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/calorix/backend/config"
	"github.com/calorix/backend/internal/router"
	"github.com/calorix/backend/internal/service"
)

// Server wires the services to an HTTP listener
type Server struct {
	engine *gin.Engine
	http   *http.Server
}

// New builds the full service graph on top of db and returns a ready server.
// redisClient may be nil, which disables rate limiting.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	users := service.NewUserService(db)
	dishes := service.NewDishService(db)
	meals := service.NewMealService(db)
	reports := service.NewMealReportService(users, meals)
	auth := service.NewAuthService(db, cfg.JWTSecret)

	engine := router.SetupRouter(router.Options{
		Auth:               auth,
		Users:              users,
		Dishes:             dishes,
		Meals:              meals,
		Reports:            reports,
		Redis:              redisClient,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	})

	return &Server{
		engine: engine,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
	}
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	logrus.WithField("addr", s.http.Addr).Info("starting server")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
