package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/calorix/backend/internal/mocks"
	"github.com/calorix/backend/internal/models"
)

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func reportTestUser(target int) *models.User {
	return &models.User{ID: uuid.New(), DailyCalorieTarget: target}
}

func TestReportForDay(t *testing.T) {
	users := new(mocks.MockUserService)
	meals := new(mocks.MockMealService)
	svc := NewMealReportService(users, meals)

	user := reportTestUser(2000)
	day := utcDate(2024, 5, 1)
	dayMeals := []models.Meal{
		{ID: uuid.New(), UserID: user.ID, Calories: 700, CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), UserID: user.ID, Calories: 600, CreatedAt: time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC)},
	}

	users.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	meals.On("ForDay", mock.Anything, user.ID, day, time.UTC).Return(dayMeals, nil)

	got, err := svc.ReportForDay(context.Background(), user.ID, day, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, day, got.Date)
	assert.Equal(t, 1300, got.TotalCalories)
	assert.Equal(t, 2000, got.DailyCalorieTarget)
	assert.False(t, got.Exceeded())
	assert.Len(t, got.Meals, 2)
}

func TestReportForDayUnknownUserAborts(t *testing.T) {
	users := new(mocks.MockUserService)
	meals := new(mocks.MockMealService)
	svc := NewMealReportService(users, meals)

	userID := uuid.New()
	users.On("GetByID", mock.Anything, userID).Return(nil, ErrUserNotFound)

	got, err := svc.ReportForDay(context.Background(), userID, utcDate(2024, 5, 1), time.UTC)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrUserNotFound)
	meals.AssertNotCalled(t, "ForDay", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportForDayEmptyDay(t *testing.T) {
	users := new(mocks.MockUserService)
	meals := new(mocks.MockMealService)
	svc := NewMealReportService(users, meals)

	user := reportTestUser(1800)
	day := utcDate(2024, 5, 2)
	users.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	meals.On("ForDay", mock.Anything, user.ID, day, time.UTC).Return([]models.Meal{}, nil)

	got, err := svc.ReportForDay(context.Background(), user.ID, day, time.UTC)
	require.NoError(t, err)
	assert.NotNil(t, got.Meals)
	assert.Empty(t, got.Meals)
	assert.Equal(t, 0, got.TotalCalories)
	assert.False(t, got.Exceeded())
}

func TestReportForTodayUsesClockInZone(t *testing.T) {
	sydney, err := time.LoadLocation("Australia/Sydney")
	require.NoError(t, err)

	users := new(mocks.MockUserService)
	meals := new(mocks.MockMealService)
	svc := NewMealReportService(users, meals)
	// 22:00 UTC on Jun 10 is already Jun 11 in Sydney.
	svc.now = func() time.Time { return time.Date(2024, 6, 10, 22, 0, 0, 0, time.UTC) }

	user := reportTestUser(2000)
	expectedDay := utcDate(2024, 6, 11)
	users.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	meals.On("ForDay", mock.Anything, user.ID, expectedDay, sydney).Return([]models.Meal{}, nil)

	got, err := svc.ReportForToday(context.Background(), user.ID, sydney)
	require.NoError(t, err)
	assert.Equal(t, expectedDay, got.Date)
	meals.AssertExpectations(t)
}

func TestReportsForPeriod(t *testing.T) {
	users := new(mocks.MockUserService)
	meals := new(mocks.MockMealService)
	svc := NewMealReportService(users, meals)

	user := reportTestUser(2000)
	start, end := utcDate(2024, 5, 1), utcDate(2024, 5, 5)
	stored := []models.Meal{
		{ID: uuid.New(), UserID: user.ID, Calories: 1300, CreatedAt: time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), UserID: user.ID, Calories: 900, CreatedAt: time.Date(2024, 5, 5, 8, 0, 0, 0, time.UTC)},
	}

	users.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	meals.On("Between", mock.Anything, user.ID, start, end, time.UTC).Return(stored, nil)

	got, err := svc.ReportsForPeriod(context.Background(), user.ID, start, end, time.UTC)
	require.NoError(t, err)
	require.Len(t, got, 5)

	// Most recent first, empty days included.
	assert.Equal(t, utcDate(2024, 5, 5), got[0].Date)
	assert.Equal(t, 900, got[0].TotalCalories)
	assert.Equal(t, 0, got[1].TotalCalories)
	assert.Equal(t, 0, got[2].TotalCalories)
	assert.Equal(t, 0, got[3].TotalCalories)
	assert.Equal(t, utcDate(2024, 5, 1), got[4].Date)
	assert.Equal(t, 1300, got[4].TotalCalories)
}

func TestReportsForPeriodUnknownUserAborts(t *testing.T) {
	users := new(mocks.MockUserService)
	meals := new(mocks.MockMealService)
	svc := NewMealReportService(users, meals)

	userID := uuid.New()
	users.On("GetByID", mock.Anything, userID).Return(nil, ErrUserNotFound)

	got, err := svc.ReportsForPeriod(context.Background(), userID, utcDate(2024, 5, 1), utcDate(2024, 5, 5), time.UTC)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrUserNotFound)
	meals.AssertNotCalled(t, "Between", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportsForAllTracked(t *testing.T) {
	users := new(mocks.MockUserService)
	meals := new(mocks.MockMealService)
	svc := NewMealReportService(users, meals)

	user := reportTestUser(1500)
	stored := []models.Meal{
		{ID: uuid.New(), UserID: user.ID, Calories: 500, CreatedAt: time.Date(2024, 4, 20, 12, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), UserID: user.ID, Calories: 800, CreatedAt: time.Date(2024, 4, 25, 12, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), UserID: user.ID, Calories: 900, CreatedAt: time.Date(2024, 4, 25, 19, 0, 0, 0, time.UTC)},
	}

	users.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	meals.On("AllForUser", mock.Anything, user.ID).Return(stored, nil)

	got, err := svc.ReportsForAllTracked(context.Background(), user.ID, time.UTC)
	require.NoError(t, err)
	// Only tracked days appear, most recent first.
	require.Len(t, got, 2)
	assert.Equal(t, utcDate(2024, 4, 25), got[0].Date)
	assert.Equal(t, 1700, got[0].TotalCalories)
	assert.True(t, got[0].Exceeded())
	assert.Equal(t, utcDate(2024, 4, 20), got[1].Date)
	assert.Equal(t, 500, got[1].TotalCalories)
}

func TestReportsForAllTrackedNoMeals(t *testing.T) {
	users := new(mocks.MockUserService)
	meals := new(mocks.MockMealService)
	svc := NewMealReportService(users, meals)

	user := reportTestUser(1500)
	users.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	meals.On("AllForUser", mock.Anything, user.ID).Return([]models.Meal{}, nil)

	got, err := svc.ReportsForAllTracked(context.Background(), user.ID, time.UTC)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReportForDayIsIdempotent(t *testing.T) {
	users := new(mocks.MockUserService)
	meals := new(mocks.MockMealService)
	svc := NewMealReportService(users, meals)

	user := reportTestUser(2000)
	day := utcDate(2024, 5, 1)
	stored := []models.Meal{
		{ID: uuid.New(), UserID: user.ID, Calories: 450, CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
	}
	users.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	meals.On("ForDay", mock.Anything, user.ID, day, time.UTC).Return(stored, nil)

	first, err := svc.ReportForDay(context.Background(), user.ID, day, time.UTC)
	require.NoError(t, err)
	second, err := svc.ReportForDay(context.Background(), user.ID, day, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
