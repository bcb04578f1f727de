package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calorix/backend/internal/calorie"
)

type User struct {
	ID           uuid.UUID   `gorm:"type:varchar(36);primarykey" json:"id"`
	Name         string      `gorm:"not null" json:"name"`
	Email        string      `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string      `gorm:"not null" json:"-"`
	Age          int         `gorm:"not null" json:"age"`
	WeightKg     float64     `gorm:"not null" json:"weight_kg"`
	HeightCm     int         `gorm:"not null" json:"height_cm"`
	Sex          calorie.Sex `gorm:"type:varchar(10);not null" json:"sex"`

	ActivityLevelID uuid.UUID     `gorm:"type:varchar(36);not null" json:"activity_level_id"`
	ActivityLevel   ActivityLevel `json:"activity_level"`
	GoalID          uuid.UUID     `gorm:"type:varchar(36);not null" json:"goal_id"`
	Goal            Goal          `json:"goal"`

	// Computed once from biometrics at creation time and stored; never
	// recomputed on read.
	DailyCalorieTarget int `gorm:"not null" json:"daily_calorie_target"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// ActivityLevel is a reference table of lifestyle multipliers applied on top
// of the base metabolic rate.
type ActivityLevel struct {
	ID         uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Name       string    `gorm:"uniqueIndex;not null" json:"name"`
	Multiplier float64   `gorm:"not null" json:"multiplier"`
	CreatedAt  time.Time `json:"created_at"`
}

func (a *ActivityLevel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Goal is a reference table of goal multipliers (lose, maintain, gain).
type Goal struct {
	ID         uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Name       string    `gorm:"uniqueIndex;not null" json:"name"`
	Multiplier float64   `gorm:"not null" json:"multiplier"`
	CreatedAt  time.Time `json:"created_at"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
