package testhelpers

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/calorix/backend/internal/calorie"
	"github.com/calorix/backend/internal/database"
	"github.com/calorix/backend/internal/models"
)

// SetupTestDB opens an isolated in-memory SQLite database with the full
// schema applied.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	return db
}

// CreateTestRefs seeds one activity level and one goal and returns them.
func CreateTestRefs(t *testing.T, db *gorm.DB, activityMultiplier, goalMultiplier float64) (models.ActivityLevel, models.Goal) {
	t.Helper()

	level := models.ActivityLevel{Name: "Test Activity " + uuid.NewString(), Multiplier: activityMultiplier}
	require.NoError(t, db.Create(&level).Error)

	goal := models.Goal{Name: "Test Goal " + uuid.NewString(), Multiplier: goalMultiplier}
	require.NoError(t, db.Create(&goal).Error)

	return level, goal
}

// CreateTestUser inserts a user with the given daily calorie target.
func CreateTestUser(t *testing.T, db *gorm.DB, target int) models.User {
	t.Helper()

	level, goal := CreateTestRefs(t, db, 1.2, 1.0)
	user := models.User{
		Name:               "Test User",
		Email:              uuid.NewString() + "@example.com",
		PasswordHash:       "x",
		Age:                30,
		WeightKg:           80,
		HeightCm:           180,
		Sex:                calorie.SexMale,
		ActivityLevelID:    level.ID,
		GoalID:             goal.ID,
		DailyCalorieTarget: target,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// CreateTestDish inserts a dish with a fixed calorie value for the user.
func CreateTestDish(t *testing.T, db *gorm.DB, userID uuid.UUID, calories int) models.Dish {
	t.Helper()

	dish := models.Dish{
		UserID:   userID,
		Name:     "Test Dish " + uuid.NewString(),
		Calories: calories,
	}
	require.NoError(t, db.Create(&dish).Error)
	return dish
}

// CreateTestMeal inserts a single-line meal of one serving of a dish with
// the given calories, created at the given instant.
func CreateTestMeal(t *testing.T, db *gorm.DB, userID uuid.UUID, createdAt time.Time, calories int) models.Meal {
	t.Helper()

	dish := CreateTestDish(t, db, userID, calories)
	meal := models.Meal{
		UserID:    userID,
		Calories:  calories,
		CreatedAt: createdAt.UTC(),
		MealDishes: []models.MealDish{
			{DishID: dish.ID, Servings: 1, Calories: float64(calories)},
		},
	}
	require.NoError(t, db.Create(&meal).Error)
	return meal
}
