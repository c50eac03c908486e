package recordings

import (
	"github.com/gin-gonic/gin"

	"github.com/floorline/recorder-api/api/types"
)

// RegisterRoutes registers recording routes. adminOnly guards everything
// except the mobile upload endpoint.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, adminOnly gin.HandlerFunc) {
	router.POST("", Upload(deps))

	// system-check has to register before the :id routes so gin does not
	// treat it as a recording ID.
	router.GET("/system-check", adminOnly, SystemCheck(deps))

	router.GET("", adminOnly, List(deps))
	router.GET("/:id", adminOnly, Get(deps))
	router.DELETE("/:id", adminOnly, Delete(deps))
	router.GET("/:id/audio", adminOnly, Audio(deps))

	router.POST("/:id/transcribe", adminOnly, Transcribe(deps))
	router.POST("/:id/transcribe-whisperx", adminOnly, TranscribeWhisperX(deps))
	router.POST("/:id/transcribe-hosted", adminOnly, TranscribeHosted(deps))
	router.POST("/:id/transcribe-text", adminOnly, TranscribeText(deps))
}
