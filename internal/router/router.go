package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/calorix/backend/internal/api"
	"github.com/calorix/backend/internal/middleware"
	"github.com/calorix/backend/internal/service"
)

// Options carries the collaborators the router wires together.
type Options struct {
	Auth    service.IAuthService
	Users   service.IUserService
	Dishes  service.IDishService
	Meals   service.IMealService
	Reports service.IMealReportService

	// Redis enables per-user rate limiting when set.
	Redis              *redis.Client
	RateLimitPerMinute int
}

// SetupRouter configures the application routes
func SetupRouter(opts Options) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Time-Zone"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	authHandler := api.NewAuthHandler(opts.Users, opts.Auth)
	userHandler := api.NewUserHandler(opts.Users)
	dishHandler := api.NewDishHandler(opts.Dishes)
	mealHandler := api.NewMealHandler(opts.Meals)
	reportHandler := api.NewReportHandler(opts.Reports)

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(opts.Auth))
	if opts.Redis != nil {
		limiter := middleware.NewRateLimiter(opts.Redis, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     opts.RateLimitPerMinute,
			KeyPrefix: "ratelimit",
		})
		protected.Use(limiter.Middleware())
	}

	userHandler.RegisterRoutes(v1, protected)
	dishHandler.RegisterRoutes(protected)
	mealHandler.RegisterRoutes(protected)
	reportHandler.RegisterRoutes(protected)

	return router
}
