package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/floorline/recorder-api/api/types"
	"github.com/floorline/recorder-api/internal/services/auth"
	"github.com/floorline/recorder-api/internal/services/users"
)

// Login authenticates a user and issues a JWT
// @Summary      Log in
// @Description  Exchange username and password for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body types.LoginRequest true "Credentials"
// @Success      200 {object} types.LoginResponse
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Router       /api/v1/auth/login [post]
func Login(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
			return
		}

		user, err := deps.UserService.Authenticate(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, users.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate"})
			return
		}

		token, err := deps.AuthService.IssueToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}

		c.JSON(http.StatusOK, types.LoginResponse{
			Token:    token,
			UserID:   user.ID,
			Username: user.Username,
			Role:     user.Role,
		})
	}
}

// Me returns current user info from JWT
// @Summary      Get current user
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} auth.Claims
// @Failure      401 {object} map[string]string
// @Router       /api/v1/auth/me [get]
func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, exists := c.Get("claims")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		authClaims := claims.(*auth.Claims)
		c.JSON(http.StatusOK, gin.H{
			"user_id":  authClaims.UserID,
			"username": authClaims.Username,
			"role":     authClaims.Role,
		})
	}
}

// Middleware validates bearer tokens and stores the claims in the context
func Middleware(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := deps.AuthService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireAdmin rejects requests whose claims lack the admin role
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, exists := c.Get("claims")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		authClaims := claims.(*auth.Claims)
		if !authClaims.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
