package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floorline/recorder-api/api/types"
	"github.com/floorline/recorder-api/internal/database"
	"github.com/floorline/recorder-api/internal/models"
	authservice "github.com/floorline/recorder-api/internal/services/auth"
	"github.com/floorline/recorder-api/internal/services/users"
)

func setupAuth(t *testing.T) (*gin.Engine, *types.Dependencies) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.AutoMigrate(&models.User{}))

	userService := users.NewService(users.NewRepository(db.DB))
	_, err = userService.CreateUser(context.Background(), "boss", "secret123", "The Boss", "admin", nil)
	require.NoError(t, err)
	_, err = userService.CreateUser(context.Background(), "anna", "secret456", "", "seller", nil)
	require.NoError(t, err)

	deps := &types.Dependencies{
		AuthService: authservice.NewService("test-secret", time.Hour),
		UserService: userService,
	}

	engine := gin.New()
	group := engine.Group("/api/v1/auth")
	RegisterRoutes(group, deps)
	return engine, deps
}

func postLogin(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	engine, deps := setupAuth(t)

	w := postLogin(t, engine, `{"username": "boss", "password": "secret123"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "boss", resp.Username)
	assert.Equal(t, "admin", resp.Role)

	claims, err := deps.AuthService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "boss", claims.Username)
	assert.True(t, claims.IsAdmin())
}

func TestLoginWrongPassword(t *testing.T) {
	engine, _ := setupAuth(t)

	w := postLogin(t, engine, `{"username": "boss", "password": "nope"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	engine, _ := setupAuth(t)

	w := postLogin(t, engine, `{"username": "ghost", "password": "secret123"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginMissingFields(t *testing.T) {
	engine, _ := setupAuth(t)

	w := postLogin(t, engine, `{"username": "boss"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeRequiresToken(t *testing.T) {
	engine, _ := setupAuth(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeReturnsClaims(t *testing.T) {
	engine, _ := setupAuth(t)

	login := postLogin(t, engine, `{"username": "anna", "password": "secret456"}`)
	require.Equal(t, http.StatusOK, login.Code)
	var loginResp types.LoginResponse
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &loginResp))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+loginResp.Token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var me map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "anna", me["username"])
	assert.Equal(t, "seller", me["role"])
}

func TestMiddlewareRejectsBadHeaders(t *testing.T) {
	_, deps := setupAuth(t)

	engine := gin.New()
	engine.GET("/protected", Middleware(deps), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	engine, deps := setupAuth(t)

	protected := gin.New()
	protected.GET("/admin-only", Middleware(deps), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	sellerLogin := postLogin(t, engine, `{"username": "anna", "password": "secret456"}`)
	var sellerResp types.LoginResponse
	require.NoError(t, json.Unmarshal(sellerLogin.Body.Bytes(), &sellerResp))

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+sellerResp.Token)
	w := httptest.NewRecorder()
	protected.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminLogin := postLogin(t, engine, `{"username": "boss", "password": "secret123"}`)
	var adminResp types.LoginResponse
	require.NoError(t, json.Unmarshal(adminLogin.Body.Bytes(), &adminResp))

	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+adminResp.Token)
	w = httptest.NewRecorder()
	protected.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
