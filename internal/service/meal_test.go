package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calorix/backend/internal/testhelpers"
	"github.com/calorix/backend/internal/types"
)

func TestMealServiceCreate(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewMealService(db)
	user := testhelpers.CreateTestUser(t, db, 2000)
	rice := testhelpers.CreateTestDish(t, db, user.ID, 130)
	chicken := testhelpers.CreateTestDish(t, db, user.ID, 239)

	meal, err := svc.Create(context.Background(), user.ID, &types.CreateMealRequest{
		Name: "Lunch",
		Dishes: []types.CreateMealDishRequest{
			{DishID: rice.ID, Servings: 2},
			{DishID: chicken.ID, Servings: 1.5},
		},
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, meal.ID)
	require.Len(t, meal.MealDishes, 2)
	assert.Equal(t, 260.0, meal.MealDishes[0].Calories)
	assert.Equal(t, 358.5, meal.MealDishes[1].Calories)
	// round(260 + 358.5) = 619
	assert.Equal(t, 619, meal.Calories)
	assert.False(t, meal.CreatedAt.IsZero())
}

func TestMealServiceCreateRoundsLinesToTwoDecimals(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewMealService(db)
	user := testhelpers.CreateTestUser(t, db, 2000)
	a := testhelpers.CreateTestDish(t, db, user.ID, 333)
	b := testhelpers.CreateTestDish(t, db, user.ID, 333)

	meal, err := svc.Create(context.Background(), user.ID, &types.CreateMealRequest{
		Dishes: []types.CreateMealDishRequest{
			{DishID: a.ID, Servings: 0.333},
			{DishID: b.ID, Servings: 0.333},
		},
	})
	require.NoError(t, err)

	// 333 * 0.333 = 110.889, kept as 110.89 per line; round(221.78) = 222.
	assert.Equal(t, 110.89, meal.MealDishes[0].Calories)
	assert.Equal(t, 110.89, meal.MealDishes[1].Calories)
	assert.Equal(t, 222, meal.Calories)
}

func TestMealServiceCreateNoDishes(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewMealService(db)
	user := testhelpers.CreateTestUser(t, db, 2000)

	_, err := svc.Create(context.Background(), user.ID, &types.CreateMealRequest{Name: "Empty"})
	assert.ErrorIs(t, err, ErrNoMealDishes)
}

func TestMealServiceCreateInvalidServings(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewMealService(db)
	user := testhelpers.CreateTestUser(t, db, 2000)
	dish := testhelpers.CreateTestDish(t, db, user.ID, 100)

	_, err := svc.Create(context.Background(), user.ID, &types.CreateMealRequest{
		Dishes: []types.CreateMealDishRequest{{DishID: dish.ID, Servings: 0}},
	})
	assert.ErrorIs(t, err, ErrInvalidServings)
}

func TestMealServiceCreateUnknownDish(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewMealService(db)
	user := testhelpers.CreateTestUser(t, db, 2000)
	other := testhelpers.CreateTestUser(t, db, 2000)
	foreign := testhelpers.CreateTestDish(t, db, other.ID, 100)

	_, err := svc.Create(context.Background(), user.ID, &types.CreateMealRequest{
		Dishes: []types.CreateMealDishRequest{{DishID: uuid.New(), Servings: 1}},
	})
	assert.ErrorIs(t, err, ErrDishNotFound)

	// Another user's dish is invisible here.
	_, err = svc.Create(context.Background(), user.ID, &types.CreateMealRequest{
		Dishes: []types.CreateMealDishRequest{{DishID: foreign.ID, Servings: 1}},
	})
	assert.ErrorIs(t, err, ErrDishNotFound)
}

func TestMealServiceGetForUser(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewMealService(db)
	user := testhelpers.CreateTestUser(t, db, 2000)
	other := testhelpers.CreateTestUser(t, db, 2000)
	meal := testhelpers.CreateTestMeal(t, db, user.ID, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), 500)

	got, err := svc.GetForUser(context.Background(), user.ID, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, meal.ID, got.ID)
	require.Len(t, got.MealDishes, 1)
	assert.NotEqual(t, uuid.Nil, got.MealDishes[0].Dish.ID)

	_, err = svc.GetForUser(context.Background(), other.ID, meal.ID)
	assert.ErrorIs(t, err, ErrMealNotFound)
}

func TestMealServiceForDay(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewMealService(db)
	user := testhelpers.CreateTestUser(t, db, 2000)

	testhelpers.CreateTestMeal(t, db, user.ID, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), 300)
	testhelpers.CreateTestMeal(t, db, user.ID, time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC), 400)
	testhelpers.CreateTestMeal(t, db, user.ID, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), 500)

	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	meals, err := svc.ForDay(context.Background(), user.ID, day, time.UTC)
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, 300, meals[0].Calories)
	assert.Equal(t, 400, meals[1].Calories)
}

func TestMealServiceForDayZoneShiftsWindow(t *testing.T) {
	sydney, err := time.LoadLocation("Australia/Sydney")
	require.NoError(t, err)

	db := testhelpers.SetupTestDB(t)
	svc := NewMealService(db)
	user := testhelpers.CreateTestUser(t, db, 2000)

	// 22:00 UTC on Jun 10 is 08:00 on Jun 11 in Sydney.
	testhelpers.CreateTestMeal(t, db, user.ID, time.Date(2024, 6, 10, 22, 0, 0, 0, time.UTC), 500)

	jun10 := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	jun11 := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)

	meals, err := svc.ForDay(context.Background(), user.ID, jun10, time.UTC)
	require.NoError(t, err)
	assert.Len(t, meals, 1)

	meals, err = svc.ForDay(context.Background(), user.ID, jun11, sydney)
	require.NoError(t, err)
	assert.Len(t, meals, 1)

	meals, err = svc.ForDay(context.Background(), user.ID, jun10, sydney)
	require.NoError(t, err)
	assert.Empty(t, meals)
}

func TestMealServiceBetween(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewMealService(db)
	user := testhelpers.CreateTestUser(t, db, 2000)

	testhelpers.CreateTestMeal(t, db, user.ID, time.Date(2024, 4, 30, 12, 0, 0, 0, time.UTC), 100)
	testhelpers.CreateTestMeal(t, db, user.ID, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), 200)
	testhelpers.CreateTestMeal(t, db, user.ID, time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC), 300)
	testhelpers.CreateTestMeal(t, db, user.ID, time.Date(2024, 5, 4, 12, 0, 0, 0, time.UTC), 400)

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
	meals, err := svc.Between(context.Background(), user.ID, start, end, time.UTC)
	require.NoError(t, err)
	// Both boundary days are included.
	require.Len(t, meals, 2)
	assert.Equal(t, 200, meals[0].Calories)
	assert.Equal(t, 300, meals[1].Calories)
}

func TestMealServiceAllForUserScoped(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewMealService(db)
	user := testhelpers.CreateTestUser(t, db, 2000)
	other := testhelpers.CreateTestUser(t, db, 2000)

	testhelpers.CreateTestMeal(t, db, user.ID, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), 100)
	testhelpers.CreateTestMeal(t, db, other.ID, time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC), 999)

	meals, err := svc.AllForUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, 100, meals[0].Calories)
}
