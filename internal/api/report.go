package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/calorix/backend/internal/service"
)

// ReportHandler serves the four daily report endpoints. Every endpoint reads
// the X-Time-Zone header to pick the calendar under which days are cut.
type ReportHandler struct {
	reports service.IMealReportService
}

// NewReportHandler creates a new ReportHandler instance
func NewReportHandler(reports service.IMealReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// RegisterRoutes registers report routes on an authenticated group
func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/meals/report/daily")
	{
		reports.GET("/today", h.Today)
		reports.GET("/day", h.Day)
		reports.GET("/period", h.Period)
		reports.GET("/all-tracked", h.AllTracked)
	}
}

// Today returns the report for the current date in the requested zone
func (h *ReportHandler) Today(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	loc, ok := resolveZone(c)
	if !ok {
		return
	}

	r, err := h.reports.ReportForToday(c.Request.Context(), userID, loc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDailyReportResponse(*r))
}

// Day returns the report for the date given by the `day` query parameter
func (h *ReportHandler) Day(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	loc, ok := resolveZone(c)
	if !ok {
		return
	}

	day, ok := parseDateParam(c, "day")
	if !ok {
		return
	}

	r, err := h.reports.ReportForDay(c.Request.Context(), userID, day, loc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDailyReportResponse(*r))
}

// Period returns one report per day in the inclusive [start_day, end_day]
// range, empty days included, most recent first.
func (h *ReportHandler) Period(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	loc, ok := resolveZone(c)
	if !ok {
		return
	}

	startDay, ok := parseDateParam(c, "start_day")
	if !ok {
		return
	}
	endDay, ok := parseDateParam(c, "end_day")
	if !ok {
		return
	}
	if endDay.Before(startDay) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_day must not be before start_day"})
		return
	}

	reports, err := h.reports.ReportsForPeriod(c.Request.Context(), userID, startDay, endDay, loc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDailyReportResponses(reports))
}

// AllTracked returns one report per day on which the user has meals, most
// recent first.
func (h *ReportHandler) AllTracked(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	loc, ok := resolveZone(c)
	if !ok {
		return
	}

	reports, err := h.reports.ReportsForAllTracked(c.Request.Context(), userID, loc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newDailyReportResponses(reports))
}

func parseDateParam(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + name + " parameter"})
		return time.Time{}, false
	}
	day, err := time.Parse(dateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " parameter, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return day, true
}
