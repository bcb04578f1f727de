package types

import "github.com/google/uuid"

// CreateUserRequest represents the request body for registering a user
type CreateUserRequest struct {
	Name            string    `json:"name" binding:"required"`
	Email           string    `json:"email" binding:"required,email"`
	Password        string    `json:"password" binding:"required,min=8"`
	Age             int       `json:"age" binding:"required,gt=0,lt=150"`
	WeightKg        float64   `json:"weight_kg" binding:"required,gt=0"`
	HeightCm        int       `json:"height_cm" binding:"required,gt=0"`
	Sex             string    `json:"sex" binding:"required,oneof=male female"`
	ActivityLevelID uuid.UUID `json:"activity_level_id" binding:"required"`
	GoalID          uuid.UUID `json:"goal_id" binding:"required"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateDishRequest represents the request body for creating a dish.
// Calories may be supplied directly; when omitted, all three macronutrient
// values are required so that calories can be derived.
type CreateDishRequest struct {
	Name          string   `json:"name" binding:"required"`
	Calories      *int     `json:"calories" binding:"omitempty,gte=0"`
	Protein       *float64 `json:"protein" binding:"omitempty,gte=0"`
	Fat           *float64 `json:"fat" binding:"omitempty,gte=0"`
	Carbohydrates *float64 `json:"carbohydrates" binding:"omitempty,gte=0"`
}

// CreateMealDishRequest is one line of a meal creation request.
type CreateMealDishRequest struct {
	DishID   uuid.UUID `json:"dish_id" binding:"required"`
	Servings float64   `json:"servings" binding:"required,gt=0,lte=100"`
}

// CreateMealRequest represents the request body for creating a meal
type CreateMealRequest struct {
	Name   string                  `json:"name"`
	Dishes []CreateMealDishRequest `json:"dishes" binding:"required,min=1,dive"`
}
