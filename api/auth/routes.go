package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/floorline/recorder-api/api/types"
)

// RegisterRoutes registers auth routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/login", Login(deps))
	router.GET("/me", Middleware(deps), Me())
}
