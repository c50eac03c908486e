package recordings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/floorline/recorder-api/api/types"
)

// SystemCheck probes the external transcription dependencies
// @Summary      Check transcription dependencies
// @Description  Probe the python interpreter, faster-whisper, whisperx and
// @Description  ffmpeg and report availability, version and errors for each.
// @Tags         recordings
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} syscheck.Report
// @Failure      500 {object} map[string]string
// @Router       /api/v1/recordings/system-check [get]
func SystemCheck(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.SysChecker == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "System checker not available"})
			return
		}

		report := deps.SysChecker.Run(c.Request.Context())
		c.JSON(http.StatusOK, report)
	}
}
