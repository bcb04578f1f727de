// Package api contains the HTTP handlers for the v1 REST surface. Handlers
// bind and validate request bodies, resolve the reporting time zone, and
// translate service errors into HTTP status codes; all domain behavior lives
// in the service layer.
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/calorix/backend/internal/calorie"
	"github.com/calorix/backend/internal/service"
)

// timeZoneHeader carries an IANA zone identifier choosing the calendar used
// by report endpoints. Absent header means UTC.
const timeZoneHeader = "X-Time-Zone"

const dateLayout = "2006-01-02"

// currentUserID extracts the authenticated user id stored by the auth
// middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}
	return id, true
}

// resolveZone parses the X-Time-Zone header, defaulting to UTC.
func resolveZone(c *gin.Context) (*time.Location, bool) {
	name := c.GetHeader(timeZoneHeader)
	if name == "" {
		return time.UTC, true
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + timeZoneHeader + " header"})
		return nil, false
	}
	return loc, true
}

// respondError maps service errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrMealNotFound),
		errors.Is(err, service.ErrDishNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrDishNameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrMissingMacros),
		errors.Is(err, service.ErrNoMealDishes),
		errors.Is(err, service.ErrInvalidServings),
		errors.Is(err, service.ErrActivityLevelNotFound),
		errors.Is(err, service.ErrGoalNotFound),
		errors.Is(err, calorie.ErrUnsupportedSex):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
