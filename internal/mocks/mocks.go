package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/calorix/backend/internal/models"
	"github.com/calorix/backend/internal/types"
)

// MockUserService is a mock implementation of the IUserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, req *types.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) ListActivityLevels(ctx context.Context) ([]models.ActivityLevel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ActivityLevel), args.Error(1)
}

func (m *MockUserService) ListGoals(ctx context.Context) ([]models.Goal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Goal), args.Error(1)
}

// MockMealService is a mock implementation of the IMealService interface
type MockMealService struct {
	mock.Mock
}

func (m *MockMealService) Create(ctx context.Context, userID uuid.UUID, req *types.CreateMealRequest) (*models.Meal, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealService) GetForUser(ctx context.Context, userID, id uuid.UUID) (*models.Meal, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealService) AllForUser(ctx context.Context, userID uuid.UUID) ([]models.Meal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Meal), args.Error(1)
}

func (m *MockMealService) ForDay(ctx context.Context, userID uuid.UUID, day time.Time, loc *time.Location) ([]models.Meal, error) {
	args := m.Called(ctx, userID, day, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Meal), args.Error(1)
}

func (m *MockMealService) Between(ctx context.Context, userID uuid.UUID, startDay, endDay time.Time, loc *time.Location) ([]models.Meal, error) {
	args := m.Called(ctx, userID, startDay, endDay, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Meal), args.Error(1)
}

// MockMealReportService is a mock implementation of the IMealReportService interface
type MockMealReportService struct {
	mock.Mock
}

func (m *MockMealReportService) ReportForToday(ctx context.Context, userID uuid.UUID, loc *time.Location) (*models.DailyReport, error) {
	args := m.Called(ctx, userID, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyReport), args.Error(1)
}

func (m *MockMealReportService) ReportForDay(ctx context.Context, userID uuid.UUID, day time.Time, loc *time.Location) (*models.DailyReport, error) {
	args := m.Called(ctx, userID, day, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyReport), args.Error(1)
}

func (m *MockMealReportService) ReportsForPeriod(ctx context.Context, userID uuid.UUID, startDay, endDay time.Time, loc *time.Location) ([]models.DailyReport, error) {
	args := m.Called(ctx, userID, startDay, endDay, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DailyReport), args.Error(1)
}

func (m *MockMealReportService) ReportsForAllTracked(ctx context.Context, userID uuid.UUID, loc *time.Location) ([]models.DailyReport, error) {
	args := m.Called(ctx, userID, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DailyReport), args.Error(1)
}
