package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/calorix/backend/internal/service"
)

// UserHandler serves the authenticated user's profile and the reference
// tables used at registration.
type UserHandler struct {
	users service.IUserService
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(users service.IUserService) *UserHandler {
	return &UserHandler{users: users}
}

// RegisterRoutes registers user routes on an authenticated group, and the
// reference-table routes on the public group.
func (h *UserHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/activity-levels", h.ListActivityLevels)
	public.GET("/goals", h.ListGoals)
	protected.GET("/users/me", h.Me)
}

// Me returns the authenticated user
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListActivityLevels returns the activity level reference table
func (h *UserHandler) ListActivityLevels(c *gin.Context) {
	levels, err := h.users.ListActivityLevels(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, levels)
}

// ListGoals returns the goal reference table
func (h *UserHandler) ListGoals(c *gin.Context) {
	goals, err := h.users.ListGoals(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}
