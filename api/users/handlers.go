package users

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/floorline/recorder-api/api/types"
	"github.com/floorline/recorder-api/internal/services/users"
)

// Create registers a new user account
// @Summary      Create user
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body types.CreateUserRequest true "User"
// @Success      201 {object} models.User
// @Failure      400 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Router       /api/v1/users [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := deps.UserService.CreateUser(c.Request.Context(), req.Username, req.Password, req.FullName, req.Role, req.LocationID)
		if err != nil {
			if errors.Is(err, users.ErrUsernameTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		c.JSON(http.StatusCreated, user)
	}
}

// List returns all users
// @Summary      List users
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} models.User
// @Router       /api/v1/users [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := deps.UserService.ListUsers(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
			return
		}
		c.JSON(http.StatusOK, all)
	}
}

// Get returns a single user
// @Summary      Get user
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} models.User
// @Failure      404 {object} map[string]string
// @Router       /api/v1/users/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		user, err := deps.UserService.GetUser(c.Request.Context(), uint(id))
		if err != nil {
			if errors.Is(err, users.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// Delete removes a user
// @Summary      Delete user
// @Tags         users
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Success      204
// @Failure      404 {object} map[string]string
// @Router       /api/v1/users/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		if err := deps.UserService.DeleteUser(c.Request.Context(), uint(id)); err != nil {
			if errors.Is(err, users.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
