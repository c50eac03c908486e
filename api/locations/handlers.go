package locations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/floorline/recorder-api/api/types"
	"github.com/floorline/recorder-api/internal/models"
	"github.com/floorline/recorder-api/internal/services/locations"
)

// Create registers a new sales floor
// @Summary      Create location
// @Tags         locations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body types.CreateLocationRequest true "Location"
// @Success      201 {object} models.Location
// @Failure      400 {object} map[string]string
// @Router       /api/v1/locations [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateLocationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		location := &models.Location{
			Name:    req.Name,
			Address: req.Address,
			Comment: req.Comment,
		}

		if err := deps.LocationService.CreateLocation(c.Request.Context(), location); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create location"})
			return
		}

		c.JSON(http.StatusCreated, location)
	}
}

// List returns all locations
// @Summary      List locations
// @Tags         locations
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} models.Location
// @Router       /api/v1/locations [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := deps.LocationService.ListLocations(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list locations"})
			return
		}
		c.JSON(http.StatusOK, all)
	}
}

// Get returns a single location
// @Summary      Get location
// @Tags         locations
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Location ID"
// @Success      200 {object} models.Location
// @Failure      404 {object} map[string]string
// @Router       /api/v1/locations/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location ID"})
			return
		}

		location, err := deps.LocationService.GetLocation(c.Request.Context(), uint(id))
		if err != nil {
			if errors.Is(err, locations.ErrLocationNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch location"})
			return
		}
		c.JSON(http.StatusOK, location)
	}
}

// Delete removes a location
// @Summary      Delete location
// @Tags         locations
// @Security     BearerAuth
// @Param        id path int true "Location ID"
// @Success      204
// @Failure      404 {object} map[string]string
// @Router       /api/v1/locations/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location ID"})
			return
		}

		if err := deps.LocationService.DeleteLocation(c.Request.Context(), uint(id)); err != nil {
			if errors.Is(err, locations.ErrLocationNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete location"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
