package calorie

import (
	"errors"
	"fmt"
	"math"
)

// Calorie coefficients per gram of macronutrient.
const (
	proteinCaloriesPerGram = 4.0
	fatCaloriesPerGram     = 9.0
	carbsCaloriesPerGram   = 4.0
)

// ErrUnsupportedSex is returned when a daily target is requested for a sex
// value outside the supported enumeration.
var ErrUnsupportedSex = errors.New("unsupported sex")

// Sex is the closed enumeration used by the Harris-Benedict formula.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Valid reports whether s is one of the supported enumeration values.
func (s Sex) Valid() bool {
	_, ok := bmrParamsBySex[s]
	return ok
}

// bmrParams holds the per-sex coefficients of the Harris-Benedict formula.
type bmrParams struct {
	base         float64
	weightFactor float64
	heightFactor float64
	ageFactor    float64
}

var bmrParamsBySex = map[Sex]bmrParams{
	SexMale:   {base: 88.36, weightFactor: 13.4, heightFactor: 4.8, ageFactor: 5.7},
	SexFemale: {base: 447.6, weightFactor: 9.2, heightFactor: 3.1, ageFactor: 4.3},
}

// DeriveDishCalories computes the calories per serving of a dish from its
// macronutrient composition in grams, rounded to the nearest integer.
// All three values must be present and non-negative; callers validate that
// before reaching this point.
func DeriveDishCalories(proteinGrams, fatGrams, carbsGrams float64) int {
	calories := proteinGrams*proteinCaloriesPerGram +
		fatGrams*fatCaloriesPerGram +
		carbsGrams*carbsCaloriesPerGram
	return int(math.Round(calories))
}

// DeriveDailyTarget computes a user's daily calorie target: the sex-specific
// Harris-Benedict base metabolic rate scaled by the activity level and goal
// multipliers, rounded to the nearest integer.
func DeriveDailyTarget(sex Sex, weightKg float64, heightCm, ageYears int, activityMultiplier, goalMultiplier float64) (int, error) {
	params, ok := bmrParamsBySex[sex]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedSex, sex)
	}

	bmr := params.base +
		params.weightFactor*weightKg +
		params.heightFactor*float64(heightCm) -
		params.ageFactor*float64(ageYears)

	return int(math.Round(bmr * activityMultiplier * goalMultiplier)), nil
}

// LineCalories computes the calorie contribution of a single meal line:
// dish calories times servings, rounded to 2 decimal places. The 2dp
// rounding happens per line, before meal totals are summed, to stay
// compatible with historically reported values.
func LineCalories(dishCalories int, servings float64) float64 {
	return math.Round(float64(dishCalories)*servings*100) / 100
}

// MealCalories sums per-line calorie subtotals into a meal total, rounded
// to the nearest integer.
func MealCalories(lineCalories []float64) int {
	var total float64
	for _, c := range lineCalories {
		total += c
	}
	return int(math.Round(total))
}
