package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/calorix/backend/internal/service"
	"github.com/calorix/backend/internal/types"
)

// MealHandler serves meal management
type MealHandler struct {
	meals service.IMealService
}

// NewMealHandler creates a new MealHandler instance
func NewMealHandler(meals service.IMealService) *MealHandler {
	return &MealHandler{meals: meals}
}

// RegisterRoutes registers meal routes on an authenticated group
func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals")
	{
		meals.POST("", h.Create)
		meals.GET("", h.List)
		meals.GET("/:id", h.Get)
	}
}

// Create creates a meal for the authenticated user
func (h *MealHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.meals.Create(c.Request.Context(), userID, &req)
	if err != nil {
		// A dish reference that does not resolve makes the request body
		// unprocessable; this is not a lookup of a missing resource.
		if errors.Is(err, service.ErrDishNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// Get returns one of the authenticated user's meals
func (h *MealHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	meal, err := h.meals.GetForUser(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

// List returns the authenticated user's full meal history
func (h *MealHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	meals, err := h.meals.AllForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}
