package api

import (
	"github.com/calorix/backend/internal/models"
)

// DailyReportResponse is the external representation of a daily report. The
// derived exceeded flag is materialized so clients never recompute it.
type DailyReportResponse struct {
	Date               string        `json:"date"`
	Meals              []models.Meal `json:"meals"`
	DailyCalorieTarget int           `json:"daily_calorie_target"`
	TotalCalories      int           `json:"total_calories"`
	Exceeded           bool          `json:"exceeded"`
}

func newDailyReportResponse(r models.DailyReport) DailyReportResponse {
	return DailyReportResponse{
		Date:               r.Date.Format(dateLayout),
		Meals:              r.Meals,
		DailyCalorieTarget: r.DailyCalorieTarget,
		TotalCalories:      r.TotalCalories,
		Exceeded:           r.Exceeded(),
	}
}

func newDailyReportResponses(reports []models.DailyReport) []DailyReportResponse {
	out := make([]DailyReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, newDailyReportResponse(r))
	}
	return out
}

// LoginResponse carries the issued token with the authenticated user
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}
