package models

import "time"

// DailyReport is a computed view over one local calendar day: the meals that
// fall on that day under the reporting time zone, their calorie total, and
// the user's stored daily target. It is assembled per request and never
// persisted.
type DailyReport struct {
	// Date is the local calendar date, normalized to midnight UTC so that
	// values are comparable regardless of the reporting zone.
	Date               time.Time `json:"date"`
	Meals              []Meal    `json:"meals"`
	DailyCalorieTarget int       `json:"daily_calorie_target"`
	TotalCalories      int       `json:"total_calories"`
}

// Exceeded reports whether the day's consumed calories are over the target.
func (r DailyReport) Exceeded() bool {
	return r.TotalCalories > r.DailyCalorieTarget
}
