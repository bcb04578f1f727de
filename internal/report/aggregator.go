// Package report implements calendar-day bucketing of timestamped meals
// under an arbitrary IANA time zone, and assembly of per-day reports.
package report

import (
	"sort"
	"time"

	"github.com/calorix/backend/internal/models"
)

// DateOf returns the local calendar date of instant t in loc, normalized to
// midnight UTC. Two instants map to the same value exactly when they share a
// wall-clock date in loc.
func DateOf(t time.Time, loc *time.Location) time.Time {
	year, month, day := t.In(loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DayInterval returns the half-open instant range [start, end) covering the
// calendar date in loc. The conversion goes through full zoned semantics, so
// days shortened or stretched by daylight-saving transitions still map to
// exactly one interval.
func DayInterval(date time.Time, loc *time.Location) (start, end time.Time) {
	year, month, day := date.Date()
	start = time.Date(year, month, day, 0, 0, 0, 0, loc)
	end = time.Date(year, month, day+1, 0, 0, 0, 0, loc)
	return start, end
}

// DatesBetween returns every calendar date from start to end inclusive, in
// ascending order. start == end yields a single date; an inverted range
// yields nil.
func DatesBetween(start, end time.Time) []time.Time {
	startDate := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDate := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	var dates []time.Time
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// GroupByCalendarDay buckets meals by the local calendar date of their
// creation instant in loc. Bucket assignment is a pure function of
// (instant, zone): the same meal can land on different dates under
// different zones, but never in two buckets within one grouping.
func GroupByCalendarDay(meals []models.Meal, loc *time.Location) map[time.Time][]models.Meal {
	byDate := make(map[time.Time][]models.Meal)
	for _, meal := range meals {
		date := DateOf(meal.CreatedAt, loc)
		byDate[date] = append(byDate[date], meal)
	}
	return byDate
}

// BuildReportsForDates emits one DailyReport per requested date, most recent
// first. Dates absent from mealsByDate produce a report with no meals and a
// zero calorie total.
func BuildReportsForDates(dates []time.Time, mealsByDate map[time.Time][]models.Meal, target int) []models.DailyReport {
	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].After(sorted[j]) })

	reports := make([]models.DailyReport, 0, len(sorted))
	for _, date := range sorted {
		reports = append(reports, BuildReport(date, mealsByDate[date], target))
	}
	return reports
}

// BuildReport assembles the report for a single date from its bucket.
func BuildReport(date time.Time, meals []models.Meal, target int) models.DailyReport {
	if meals == nil {
		meals = []models.Meal{}
	}
	total := 0
	for _, meal := range meals {
		total += meal.Calories
	}
	return models.DailyReport{
		Date:               date,
		Meals:              meals,
		DailyCalorieTarget: target,
		TotalCalories:      total,
	}
}

// TrackedDates returns the distinct bucket dates in descending order.
func TrackedDates(mealsByDate map[time.Time][]models.Meal) []time.Time {
	dates := make([]time.Time, 0, len(mealsByDate))
	for date := range mealsByDate {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates
}
