package recordings

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/floorline/recorder-api/api/types"
	"github.com/floorline/recorder-api/internal/models"
	"github.com/floorline/recorder-api/internal/services/recordings"
)

// Upload stores a new recording with its audio payload
// @Summary      Upload recording
// @Description  Multipart upload of one audio file from the mobile client. The
// @Description  audio payload is immutable once stored.
// @Tags         recordings
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Audio file"
// @Param        location_id formData int true "Sales floor ID"
// @Param        comment formData string false "Free-form note"
// @Success      201 {object} models.Recording
// @Failure      400 {object} map[string]string
// @Router       /api/v1/recordings [post]
func Upload(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Audio file is required"})
			return
		}

		locationID, err := strconv.ParseUint(c.PostForm("location_id"), 10, 32)
		if err != nil || locationID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Valid location_id is required"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
			return
		}
		defer file.Close()

		audio, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
			return
		}
		if len(audio) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Uploaded file is empty"})
			return
		}

		recording := &models.Recording{
			LocationID:  uint(locationID),
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			AudioData:   audio,
			Comment:     c.PostForm("comment"),
		}
		if userID, exists := c.Get("user_id"); exists {
			if id, ok := userID.(uint); ok {
				recording.UserID = id
			}
		}

		if err := deps.RecordingService.CreateRecording(c.Request.Context(), recording); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store recording"})
			return
		}

		c.JSON(http.StatusCreated, recording)
	}
}

// List returns recordings without their audio payloads
// @Summary      List recordings
// @Tags         recordings
// @Security     BearerAuth
// @Produce      json
// @Param        location_id query int false "Filter by sales floor"
// @Success      200 {array} models.Recording
// @Router       /api/v1/recordings [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var locationID uint64
		if raw := c.Query("location_id"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location_id"})
				return
			}
			locationID = parsed
		}

		all, err := deps.RecordingService.ListRecordings(c.Request.Context(), uint(locationID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list recordings"})
			return
		}
		c.JSON(http.StatusOK, all)
	}
}

// Get returns a single recording
// @Summary      Get recording
// @Tags         recordings
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Recording ID"
// @Success      200 {object} models.Recording
// @Failure      404 {object} map[string]string
// @Router       /api/v1/recordings/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		recording, ok := fetchRecording(c, deps)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, recording)
	}
}

// Delete removes a recording and its audio payload
// @Summary      Delete recording
// @Tags         recordings
// @Security     BearerAuth
// @Param        id path int true "Recording ID"
// @Success      204
// @Failure      404 {object} map[string]string
// @Router       /api/v1/recordings/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := recordingID(c)
		if !ok {
			return
		}

		if err := deps.RecordingService.DeleteRecording(c.Request.Context(), id); err != nil {
			if errors.Is(err, recordings.ErrRecordingNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Recording not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recording"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// Audio streams the stored audio payload
// @Summary      Download recording audio
// @Tags         recordings
// @Security     BearerAuth
// @Produce      octet-stream
// @Param        id path int true "Recording ID"
// @Success      200 {file} binary
// @Failure      404 {object} map[string]string
// @Router       /api/v1/recordings/{id}/audio [get]
func Audio(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		recording, ok := fetchRecording(c, deps)
		if !ok {
			return
		}

		if !recording.HasAudio() {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recording has no audio payload"})
			return
		}

		contentType := recording.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		c.Header("Content-Disposition", `attachment; filename="`+recording.FileName+`"`)
		c.Data(http.StatusOK, contentType, recording.AudioData)
	}
}

// recordingID parses the :id path parameter, answering 400 on garbage
func recordingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recording ID"})
		return 0, false
	}
	return uint(id), true
}

// fetchRecording loads the recording behind :id, answering 404/500 on failure
func fetchRecording(c *gin.Context, deps *types.Dependencies) (*models.Recording, bool) {
	id, ok := recordingID(c)
	if !ok {
		return nil, false
	}

	recording, err := deps.RecordingService.GetRecording(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, recordings.ErrRecordingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recording not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recording"})
		return nil, false
	}
	return recording, true
}
