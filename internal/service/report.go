package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/calorix/backend/internal/models"
	"github.com/calorix/backend/internal/report"
)

// MealReportService assembles daily calorie reports. It is stateless and
// holds no mutable data: every call resolves the user, fetches the covering
// meal set through its collaborators and delegates the bucketing to the
// report package, so concurrent calls are independent.
type MealReportService struct {
	users IUserService
	meals IMealService
	now   func() time.Time
}

// Ensure MealReportService implements IMealReportService
var _ IMealReportService = (*MealReportService)(nil)

// NewMealReportService creates a new MealReportService instance
func NewMealReportService(users IUserService, meals IMealService) *MealReportService {
	return &MealReportService{
		users: users,
		meals: meals,
		now:   time.Now,
	}
}

// ReportForToday builds the report for the current calendar date in loc.
func (s *MealReportService) ReportForToday(ctx context.Context, userID uuid.UUID, loc *time.Location) (*models.DailyReport, error) {
	today := report.DateOf(s.now(), loc)
	return s.ReportForDay(ctx, userID, today, loc)
}

// ReportForDay builds the report for one calendar date in loc. A day with no
// meals yields a report with an empty meal list and a zero total.
func (s *MealReportService) ReportForDay(ctx context.Context, userID uuid.UUID, day time.Time, loc *time.Location) (*models.DailyReport, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	meals, err := s.meals.ForDay(ctx, userID, day, loc)
	if err != nil {
		return nil, err
	}

	date := report.DateOf(day, time.UTC)
	r := report.BuildReport(date, meals, user.DailyCalorieTarget)
	return &r, nil
}

// ReportsForPeriod builds one report per calendar date from startDay to
// endDay inclusive, most recent first. Every date in the range is reported,
// whether or not it has meals.
func (s *MealReportService) ReportsForPeriod(ctx context.Context, userID uuid.UUID, startDay, endDay time.Time, loc *time.Location) ([]models.DailyReport, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	meals, err := s.meals.Between(ctx, userID, startDay, endDay, loc)
	if err != nil {
		return nil, err
	}

	mealsByDate := report.GroupByCalendarDay(meals, loc)
	dates := report.DatesBetween(startDay, endDay)
	return report.BuildReportsForDates(dates, mealsByDate, user.DailyCalorieTarget), nil
}

// ReportsForAllTracked builds one report per calendar date on which the user
// has at least one meal, most recent first. Unlike period reports, dates
// without meals do not appear.
func (s *MealReportService) ReportsForAllTracked(ctx context.Context, userID uuid.UUID, loc *time.Location) ([]models.DailyReport, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	meals, err := s.meals.AllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	mealsByDate := report.GroupByCalendarDay(meals, loc)
	dates := report.TrackedDates(mealsByDate)
	return report.BuildReportsForDates(dates, mealsByDate, user.DailyCalorieTarget), nil
}
