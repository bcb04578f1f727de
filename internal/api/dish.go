package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/calorix/backend/internal/service"
	"github.com/calorix/backend/internal/types"
)

// DishHandler serves dish management
type DishHandler struct {
	dishes service.IDishService
}

// NewDishHandler creates a new DishHandler instance
func NewDishHandler(dishes service.IDishService) *DishHandler {
	return &DishHandler{dishes: dishes}
}

// RegisterRoutes registers dish routes on an authenticated group
func (h *DishHandler) RegisterRoutes(router *gin.RouterGroup) {
	dishes := router.Group("/dishes")
	{
		dishes.POST("", h.Create)
		dishes.GET("", h.List)
		dishes.GET("/:id", h.Get)
	}
}

// Create creates a dish for the authenticated user
func (h *DishHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dish, err := h.dishes.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dish)
}

// Get returns one of the authenticated user's dishes
func (h *DishHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dish id"})
		return
	}

	dish, err := h.dishes.GetForUser(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

// List returns all of the authenticated user's dishes
func (h *DishHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dishes, err := h.dishes.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishes)
}
