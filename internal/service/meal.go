package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calorix/backend/internal/calorie"
	"github.com/calorix/backend/internal/models"
	"github.com/calorix/backend/internal/report"
	"github.com/calorix/backend/internal/types"
)

// MealService handles meal operations. Meals are stored with an absolute
// creation instant; all day-window queries are parameterized by the caller's
// time zone so the same stored data can be reported under any zone.
type MealService struct {
	db *gorm.DB
}

// Ensure MealService implements IMealService
var _ IMealService = (*MealService)(nil)

// NewMealService creates a new MealService instance
func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// Create creates a meal for a user from dish references and serving counts.
// Per-line calorie subtotals and the meal total are computed here, once, and
// stored with the meal.
func (s *MealService) Create(ctx context.Context, userID uuid.UUID, req *types.CreateMealRequest) (*models.Meal, error) {
	if len(req.Dishes) == 0 {
		return nil, ErrNoMealDishes
	}

	meal := models.Meal{
		UserID:    userID,
		Name:      normalizeSpace(req.Name),
		CreatedAt: time.Now().UTC(),
	}

	lineCalories := make([]float64, 0, len(req.Dishes))
	for _, line := range req.Dishes {
		if line.Servings <= 0 {
			return nil, ErrInvalidServings
		}

		var dish models.Dish
		err := s.db.WithContext(ctx).
			Where("id = ? AND user_id = ?", line.DishID, userID).
			First(&dish).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrDishNotFound, line.DishID)
			}
			return nil, err
		}

		subtotal := calorie.LineCalories(dish.Calories, line.Servings)
		lineCalories = append(lineCalories, subtotal)
		meal.MealDishes = append(meal.MealDishes, models.MealDish{
			DishID:   dish.ID,
			Dish:     dish,
			Servings: line.Servings,
			Calories: subtotal,
		})
	}
	meal.Calories = calorie.MealCalories(lineCalories)

	if err := s.db.WithContext(ctx).Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// GetForUser retrieves a meal owned by a user, with its dishes resolved
func (s *MealService) GetForUser(ctx context.Context, userID, id uuid.UUID) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Preload("MealDishes.Dish").
		Where("id = ? AND user_id = ?", id, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrMealNotFound, id)
		}
		return nil, err
	}
	return &meal, nil
}

// AllForUser retrieves a user's full meal history
func (s *MealService) AllForUser(ctx context.Context, userID uuid.UUID) ([]models.Meal, error) {
	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Preload("MealDishes.Dish").
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

// ForDay retrieves the meals whose creation instant falls on the given
// calendar date in loc.
func (s *MealService) ForDay(ctx context.Context, userID uuid.UUID, day time.Time, loc *time.Location) ([]models.Meal, error) {
	start, end := report.DayInterval(day, loc)
	return s.between(ctx, userID, start, end)
}

// Between retrieves the meals whose creation instant falls on any calendar
// date from startDay to endDay inclusive, in loc.
func (s *MealService) Between(ctx context.Context, userID uuid.UUID, startDay, endDay time.Time, loc *time.Location) ([]models.Meal, error) {
	start, _ := report.DayInterval(startDay, loc)
	_, end := report.DayInterval(endDay, loc)
	return s.between(ctx, userID, start, end)
}

func (s *MealService) between(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	// Bind UTC instants; timestamp columns without zone affinity compare
	// bound values textually.
	if err := s.db.WithContext(ctx).
		Preload("MealDishes.Dish").
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start.UTC(), end.UTC()).
		Order("created_at").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}
