package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/calorix/backend/internal/service"
	"github.com/calorix/backend/internal/testhelpers"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)
	router := gin.New()
	group := router.Group("/api/v1")
	NewAuthHandler(service.NewUserService(db), service.NewAuthService(db, "test-secret")).RegisterRoutes(group)
	return router, db
}

func registerBody(db *gorm.DB, t *testing.T) gin.H {
	t.Helper()
	level, goal := testhelpers.CreateTestRefs(t, db, 1.2, 1.0)
	return gin.H{
		"name":              "John Doe",
		"email":             uuid.NewString() + "@example.com",
		"password":          "password123",
		"age":               30,
		"weight_kg":         80,
		"height_cm":         180,
		"sex":               "male",
		"activity_level_id": level.ID,
		"goal_id":           goal.ID,
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	router, db := setupAuthRouter(t)
	body := registerBody(db, t)

	w := postJSON(router, "/api/v1/auth/register", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, body["email"], resp.User.Email)
	assert.Equal(t, 2224, resp.User.DailyCalorieTarget)
}

func TestAuthHandlerRegisterDuplicateEmail(t *testing.T) {
	router, db := setupAuthRouter(t)
	body := registerBody(db, t)

	w := postJSON(router, "/api/v1/auth/register", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(router, "/api/v1/auth/register", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandlerRegisterValidation(t *testing.T) {
	router, db := setupAuthRouter(t)

	body := registerBody(db, t)
	body["sex"] = "unknown"
	w := postJSON(router, "/api/v1/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = registerBody(db, t)
	body["password"] = "short"
	w = postJSON(router, "/api/v1/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = registerBody(db, t)
	body["activity_level_id"] = uuid.New()
	w = postJSON(router, "/api/v1/auth/register", body)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAuthHandlerLogin(t *testing.T) {
	router, db := setupAuthRouter(t)
	body := registerBody(db, t)

	w := postJSON(router, "/api/v1/auth/register", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(router, "/api/v1/auth/login", gin.H{
		"email":    body["email"],
		"password": body["password"],
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	w = postJSON(router, "/api/v1/auth/login", gin.H{
		"email":    body["email"],
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
