package recordings

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/floorline/recorder-api/api/types"
	"github.com/floorline/recorder-api/internal/services/recordings"
	"github.com/floorline/recorder-api/internal/services/transcriber"
)

// Transcribe runs a single-pass local transcription
// @Summary      Transcribe recording
// @Description  Run faster-whisper against the stored audio. The request
// @Description  suspends until the job finishes. Already-transcribed
// @Description  recordings return the stored text without running anything.
// @Tags         recordings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Recording ID"
// @Param        request body types.TranscribeRequest false "Options"
// @Success      200 {object} types.TranscriptionResponse
// @Failure      400 {object} types.ErrorResponse
// @Failure      404 {object} map[string]string
// @Failure      500 {object} types.ErrorResponse
// @Router       /api/v1/recordings/{id}/transcribe [post]
func Transcribe(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := recordingID(c)
		if !ok {
			return
		}

		var req types.TranscribeRequest
		if err := bindOptionalJSON(c, &req); err != nil {
			return
		}

		outcome, err := deps.Transcriber.Transcribe(c.Request.Context(), id, transcriber.BackendWhisper, transcriber.Options{
			Model: req.Model,
		})
		if err != nil {
			respondTranscriptionError(c, id, err)
			return
		}

		c.JSON(http.StatusOK, types.NewTranscriptionResponse(outcome))
	}
}

// TranscribeWhisperX runs a diarizing local transcription
// @Summary      Transcribe recording with speaker diarization
// @Description  Run WhisperX against the stored audio and split the result
// @Description  into seller and client lines. Segment and speaker metadata is
// @Description  persisted alongside the text.
// @Tags         recordings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Recording ID"
// @Param        request body types.TranscribeXRequest false "Options"
// @Success      200 {object} types.DiarizedTranscriptionResponse
// @Failure      400 {object} types.ErrorResponse
// @Failure      404 {object} map[string]string
// @Failure      500 {object} types.ErrorResponse
// @Router       /api/v1/recordings/{id}/transcribe-whisperx [post]
func TranscribeWhisperX(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := recordingID(c)
		if !ok {
			return
		}

		var req types.TranscribeXRequest
		if err := bindOptionalJSON(c, &req); err != nil {
			return
		}

		outcome, err := deps.Transcriber.Transcribe(c.Request.Context(), id, transcriber.BackendWhisperX, transcriber.Options{
			Model:   req.Model,
			HFToken: req.DiarizationToken,
		})
		if err != nil {
			respondTranscriptionError(c, id, err)
			return
		}

		c.JSON(http.StatusOK, types.NewDiarizedTranscriptionResponse(outcome))
	}
}

// TranscribeHosted transcribes through the hosted Whisper API
// @Summary      Transcribe recording via hosted API
// @Description  Send the stored audio to the hosted Whisper API. Fails with a
// @Description  service-unavailable error when no API key is configured.
// @Tags         recordings
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Recording ID"
// @Success      200 {object} types.TranscriptionResponse
// @Failure      400 {object} types.ErrorResponse
// @Failure      404 {object} map[string]string
// @Failure      500 {object} types.ErrorResponse
// @Router       /api/v1/recordings/{id}/transcribe-hosted [post]
func TranscribeHosted(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := recordingID(c)
		if !ok {
			return
		}

		outcome, err := deps.Transcriber.Transcribe(c.Request.Context(), id, transcriber.BackendHosted, transcriber.Options{})
		if err != nil {
			respondTranscriptionError(c, id, err)
			return
		}

		c.JSON(http.StatusOK, types.NewTranscriptionResponse(outcome))
	}
}

// TranscribeText commits operator-supplied text directly
// @Summary      Set transcription text manually
// @Description  Store the given text as the recording's transcription without
// @Description  running any backend. Overwrites an existing transcription.
// @Tags         recordings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Recording ID"
// @Param        request body types.TranscribeTextRequest true "Text"
// @Success      200 {object} types.TranscriptionResponse
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/v1/recordings/{id}/transcribe-text [post]
func TranscribeText(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := recordingID(c)
		if !ok {
			return
		}

		var req types.TranscribeTextRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Transcription text is required"})
			return
		}

		outcome, err := deps.Transcriber.SetTranscript(c.Request.Context(), id, req.Transcription)
		if err != nil {
			respondTranscriptionError(c, id, err)
			return
		}

		c.JSON(http.StatusOK, types.NewTranscriptionResponse(outcome))
	}
}

// bindOptionalJSON binds a JSON body when one is present. Transcription
// endpoints accept an empty body meaning "all defaults".
func bindOptionalJSON(c *gin.Context, target interface{}) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse("Invalid request body.", err.Error()))
		return err
	}
	return nil
}

// respondTranscriptionError maps an orchestrator failure onto the wire
func respondTranscriptionError(c *gin.Context, id uint, err error) {
	if errors.Is(err, recordings.ErrRecordingNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recording not found"})
		return
	}

	if terr, ok := transcriber.AsError(err); ok {
		log.Printf("[ERROR] Transcription of recording %d failed: %v", id, terr)
		c.JSON(terr.HTTPStatus(), types.NewErrorResponse(terr.Message, terr.Technical))
		return
	}

	log.Printf("[ERROR] Transcription of recording %d failed: %v", id, err)
	c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Transcription failed.", err.Error()))
}
