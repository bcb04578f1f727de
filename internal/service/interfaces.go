package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/calorix/backend/internal/models"
	"github.com/calorix/backend/internal/types"
)

// IUserService defines the interface for user operations
type IUserService interface {
	Create(ctx context.Context, req *types.CreateUserRequest) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListActivityLevels(ctx context.Context) ([]models.ActivityLevel, error)
	ListGoals(ctx context.Context) ([]models.Goal, error)
}

// IDishService defines the interface for dish operations
type IDishService interface {
	Create(ctx context.Context, userID uuid.UUID, req *types.CreateDishRequest) (*models.Dish, error)
	GetForUser(ctx context.Context, userID, id uuid.UUID) (*models.Dish, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Dish, error)
}

// IMealService defines the interface for meal operations. All returned meals
// carry their meal dishes with dishes resolved, so consumers never perform
// secondary lookups.
type IMealService interface {
	Create(ctx context.Context, userID uuid.UUID, req *types.CreateMealRequest) (*models.Meal, error)
	GetForUser(ctx context.Context, userID, id uuid.UUID) (*models.Meal, error)
	AllForUser(ctx context.Context, userID uuid.UUID) ([]models.Meal, error)
	ForDay(ctx context.Context, userID uuid.UUID, day time.Time, loc *time.Location) ([]models.Meal, error)
	Between(ctx context.Context, userID uuid.UUID, startDay, endDay time.Time, loc *time.Location) ([]models.Meal, error)
}

// IMealReportService defines the interface for daily report assembly
type IMealReportService interface {
	ReportForToday(ctx context.Context, userID uuid.UUID, loc *time.Location) (*models.DailyReport, error)
	ReportForDay(ctx context.Context, userID uuid.UUID, day time.Time, loc *time.Location) (*models.DailyReport, error)
	ReportsForPeriod(ctx context.Context, userID uuid.UUID, startDay, endDay time.Time, loc *time.Location) ([]models.DailyReport, error)
	ReportsForAllTracked(ctx context.Context, userID uuid.UUID, loc *time.Location) ([]models.DailyReport, error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	GenerateToken(user *models.User) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}
