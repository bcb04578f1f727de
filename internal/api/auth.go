package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/calorix/backend/internal/service"
	"github.com/calorix/backend/internal/types"
)

// AuthHandler serves registration and login
type AuthHandler struct {
	users service.IUserService
	auth  service.IAuthService
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(users service.IUserService, auth service.IAuthService) *AuthHandler {
	return &AuthHandler{
		users: users,
		auth:  auth,
	}
}

// RegisterRoutes registers the public auth routes
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

// Register creates a user and returns it with a token
func (h *AuthHandler) Register(c *gin.Context) {
	var req types.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.auth.GenerateToken(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, LoginResponse{Token: token, User: user})
}

// Login authenticates by email and password
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, User: user})
}
