package locations

import (
	"github.com/gin-gonic/gin"

	"github.com/floorline/recorder-api/api/types"
)

// RegisterRoutes registers location management routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", Create(deps))
	router.GET("", List(deps))
	router.GET("/:id", Get(deps))
	router.DELETE("/:id", Delete(deps))
}
