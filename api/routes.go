package api

import (
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/floorline/recorder-api/api/auth"
	"github.com/floorline/recorder-api/api/health"
	"github.com/floorline/recorder-api/api/locations"
	"github.com/floorline/recorder-api/api/recordings"
	"github.com/floorline/recorder-api/api/types"
	"github.com/floorline/recorder-api/api/users"
	"github.com/floorline/recorder-api/api/version"
	_ "github.com/floorline/recorder-api/docs/swagger"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Public routes (no auth, no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	// Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Login gets tight rate limiting to slow down credential guessing
	authGroup := v1.Group("/auth")
	authGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 2, 5))
	auth.RegisterRoutes(authGroup, deps)

	requireAuth := auth.Middleware(deps)
	requireAdmin := auth.RequireAdmin()

	// Recording routes: uploads are frequent but small in number per client,
	// transcription is expensive, so the whole group stays at a modest rate
	recordingGroup := v1.Group("/recordings")
	recordingGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10))
	recordingGroup.Use(requireAuth)
	recordings.RegisterRoutes(recordingGroup, deps, requireAdmin)

	// Admin-only management routes
	userGroup := v1.Group("/users")
	userGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	userGroup.Use(requireAuth, requireAdmin)
	users.RegisterRoutes(userGroup, deps)

	locationGroup := v1.Group("/locations")
	locationGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	locationGroup.Use(requireAuth, requireAdmin)
	locations.RegisterRoutes(locationGroup, deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
