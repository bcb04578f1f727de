package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/calorix/backend/internal/calorie"
	"github.com/calorix/backend/internal/models"
	"github.com/calorix/backend/internal/types"
)

// UserService handles user registration and lookup
type UserService struct {
	db *gorm.DB
}

// Ensure UserService implements IUserService
var _ IUserService = (*UserService)(nil)

// NewUserService creates a new UserService instance
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Create registers a new user. The daily calorie target is derived from the
// biometric inputs and the activity/goal multipliers once, here, and stored;
// later reports copy the stored value and never recompute it.
func (s *UserService) Create(ctx context.Context, req *types.CreateUserRequest) (*models.User, error) {
	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var activityLevel models.ActivityLevel
	if err := s.db.WithContext(ctx).First(&activityLevel, "id = ?", req.ActivityLevelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrActivityLevelNotFound, req.ActivityLevelID)
		}
		return nil, err
	}

	var goal models.Goal
	if err := s.db.WithContext(ctx).First(&goal, "id = ?", req.GoalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrGoalNotFound, req.GoalID)
		}
		return nil, err
	}

	target, err := calorie.DeriveDailyTarget(
		calorie.Sex(req.Sex),
		req.WeightKg,
		req.HeightCm,
		req.Age,
		activityLevel.Multiplier,
		goal.Multiplier,
	)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:               normalizeSpace(req.Name),
		Email:              req.Email,
		PasswordHash:       string(hash),
		Age:                req.Age,
		WeightKg:           req.WeightKg,
		HeightCm:           req.HeightCm,
		Sex:                calorie.Sex(req.Sex),
		ActivityLevelID:    activityLevel.ID,
		ActivityLevel:      activityLevel,
		GoalID:             goal.ID,
		Goal:               goal,
		DailyCalorieTarget: target,
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID retrieves a user by id
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Preload("ActivityLevel").
		Preload("Goal").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, id)
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Preload("ActivityLevel").
		Preload("Goal").
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, email)
		}
		return nil, err
	}
	return &user, nil
}

// ListActivityLevels returns all activity levels
func (s *UserService) ListActivityLevels(ctx context.Context) ([]models.ActivityLevel, error) {
	var levels []models.ActivityLevel
	if err := s.db.WithContext(ctx).Order("multiplier").Find(&levels).Error; err != nil {
		return nil, err
	}
	return levels, nil
}

// ListGoals returns all goals
func (s *UserService) ListGoals(ctx context.Context) ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.db.WithContext(ctx).Order("multiplier").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// normalizeSpace trims and collapses internal whitespace runs to single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
