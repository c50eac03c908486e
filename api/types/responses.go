package types

import (
	"time"

	"github.com/floorline/recorder-api/internal/services/transcriber"
)

// ErrorResponse is the uniform failure payload. TechnicalError carries the
// raw detail for debugging; Message is safe to display.
type ErrorResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	TechnicalError string `json:"technical_error,omitempty"`
}

// NewErrorResponse builds a failure payload
func NewErrorResponse(message, technical string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message, TechnicalError: technical}
}

// LoginResponse carries an issued access token
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// TranscriptionResponse is the answer to a single-pass or hosted transcribe request
type TranscriptionResponse struct {
	Success            bool      `json:"success"`
	RecordingID        uint      `json:"recording_id"`
	Transcription      string    `json:"transcription"`
	TranscribedAt      time.Time `json:"transcribed_at"`
	AlreadyTranscribed bool      `json:"already_transcribed,omitempty"`
	Language           string    `json:"language,omitempty"`
	Model              string    `json:"model,omitempty"`
	Duration           float64   `json:"duration,omitempty"`
}

// DiarizedTranscriptionResponse is the answer to a whisperx transcribe request
type DiarizedTranscriptionResponse struct {
	TranscriptionResponse
	Dialogue   string                `json:"dialogue,omitempty"`
	SellerText string                `json:"seller_text,omitempty"`
	ClientText string                `json:"client_text,omitempty"`
	Speakers   *transcriber.Speakers `json:"speakers,omitempty"`
	Segments   []transcriber.Segment `json:"segments,omitempty"`
}

// NewTranscriptionResponse converts an orchestrator outcome
func NewTranscriptionResponse(outcome *transcriber.Outcome) TranscriptionResponse {
	resp := TranscriptionResponse{
		Success:            true,
		RecordingID:        outcome.RecordingID,
		Transcription:      outcome.Text,
		TranscribedAt:      outcome.TranscribedAt,
		AlreadyTranscribed: outcome.AlreadyTranscribed,
	}
	if outcome.Result != nil {
		resp.Language = outcome.Result.Language
		resp.Model = outcome.Result.Model
		resp.Duration = outcome.Result.Duration
	}
	return resp
}

// NewDiarizedTranscriptionResponse converts a diarizing outcome
func NewDiarizedTranscriptionResponse(outcome *transcriber.Outcome) DiarizedTranscriptionResponse {
	resp := DiarizedTranscriptionResponse{
		TranscriptionResponse: NewTranscriptionResponse(outcome),
	}
	if outcome.Result != nil {
		resp.Dialogue = outcome.Result.Dialogue
		resp.SellerText = outcome.Result.SellerText
		resp.ClientText = outcome.Result.ClientText
		resp.Speakers = outcome.Result.Speakers
		resp.Segments = outcome.Result.Segments
	}
	return resp
}
