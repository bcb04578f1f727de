package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calorix/backend/internal/calorie"
	"github.com/calorix/backend/internal/models"
	"github.com/calorix/backend/internal/types"
)

// DishService handles dish operations
type DishService struct {
	db *gorm.DB
}

// Ensure DishService implements IDishService
var _ IDishService = (*DishService)(nil)

// NewDishService creates a new DishService instance
func NewDishService(db *gorm.DB) *DishService {
	return &DishService{db: db}
}

// Create creates a dish for a user. When calories are not supplied directly,
// all three macronutrient values must be present and the calories are
// derived from them; either way the stored dish always carries calories.
func (s *DishService) Create(ctx context.Context, userID uuid.UUID, req *types.CreateDishRequest) (*models.Dish, error) {
	name := normalizeSpace(req.Name)

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Dish{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: %s", ErrDishNameTaken, name)
	}

	dish := models.Dish{
		UserID:        userID,
		Name:          name,
		Protein:       req.Protein,
		Fat:           req.Fat,
		Carbohydrates: req.Carbohydrates,
	}

	if req.Calories != nil {
		dish.Calories = *req.Calories
	} else {
		if err := validateDishComposition(req); err != nil {
			return nil, err
		}
		dish.Calories = calorie.DeriveDishCalories(*req.Protein, *req.Fat, *req.Carbohydrates)
	}

	if err := s.db.WithContext(ctx).Create(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

// GetForUser retrieves a dish owned by a user
func (s *DishService) GetForUser(ctx context.Context, userID, id uuid.UUID) (*models.Dish, error) {
	var dish models.Dish
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&dish).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrDishNotFound, id)
		}
		return nil, err
	}
	return &dish, nil
}

// ListForUser retrieves all dishes owned by a user
func (s *DishService) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Dish, error) {
	var dishes []models.Dish
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name").
		Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func validateDishComposition(req *types.CreateDishRequest) error {
	var missing []string
	if req.Protein == nil {
		missing = append(missing, "protein")
	}
	if req.Fat == nil {
		missing = append(missing, "fat")
	}
	if req.Carbohydrates == nil {
		missing = append(missing, "carbohydrates")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingMacros, strings.Join(missing, ", "))
	}
	return nil
}
