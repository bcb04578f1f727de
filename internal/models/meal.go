package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal is a user-owned set of dish servings consumed at one instant.
// CreatedAt is an absolute timestamp, immutable after creation; which
// calendar day the meal belongs to is decided per report, under the
// reporting time zone. Calories is computed from the meal dishes once at
// creation and stored.
type Meal struct {
	ID         uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Name       string     `gorm:"not null;default:''" json:"name"`
	Calories   int        `gorm:"not null" json:"calories"`
	MealDishes []MealDish `gorm:"constraint:OnDelete:CASCADE" json:"meal_dishes"`
	CreatedAt  time.Time  `gorm:"not null;index" json:"created_at"`
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// MealDish is one line of a meal: a dish reference with a serving count.
// It is identified by the (meal, dish) pair and never outlives its meal.
type MealDish struct {
	MealID   uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"meal_id"`
	DishID   uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"dish_id"`
	Dish     Dish      `json:"dish"`
	Servings float64   `gorm:"not null" json:"servings"`

	// Per-line subtotal, rounded to 2 decimal places at creation.
	Calories float64 `gorm:"not null" json:"calories"`
}
