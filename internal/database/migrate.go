package database

import (
	"gorm.io/gorm"

	"github.com/calorix/backend/internal/models"
)

// Migrate applies the schema for every persisted model. DailyReport is a
// computed view and is deliberately absent.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ActivityLevel{},
		&models.Goal{},
		&models.User{},
		&models.Dish{},
		&models.Meal{},
		&models.MealDish{},
	)
}
