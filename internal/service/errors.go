package service

import "errors"

// Not-found conditions, surfaced to the caller as-is; never retryable.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrDishNotFound = errors.New("dish not found")
	ErrMealNotFound = errors.New("meal not found")
)

// Conflict conditions.
var (
	ErrEmailTaken    = errors.New("user with this email already exists")
	ErrDishNameTaken = errors.New("dish with this name already exists for user")
)

// Contract violations: malformed input from an upstream layer. The services
// fail fast and perform no partial work.
var (
	ErrActivityLevelNotFound = errors.New("activity level not found")
	ErrGoalNotFound          = errors.New("goal not found")
	ErrMissingMacros         = errors.New("missing macronutrients required to derive calories")
	ErrNoMealDishes          = errors.New("meal must include at least one dish")
	ErrInvalidServings       = errors.New("servings must be greater than zero")
	ErrInvalidCredentials    = errors.New("invalid credentials")
)
