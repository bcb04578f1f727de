package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Dish is a user-owned food item. Calories per serving are either supplied
// directly or derived from the macronutrient composition at creation time;
// after creation Calories is always present.
type Dish struct {
	ID       uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID   uuid.UUID `gorm:"type:varchar(36);not null;index:idx_dishes_user_name,unique" json:"user_id"`
	Name     string    `gorm:"not null;index:idx_dishes_user_name,unique" json:"name"`
	Calories int       `gorm:"not null" json:"calories"`

	// Macronutrients in grams; optional when Calories is supplied directly.
	Protein       *float64 `json:"protein,omitempty"`
	Fat           *float64 `json:"fat,omitempty"`
	Carbohydrates *float64 `json:"carbohydrates,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (d *Dish) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
