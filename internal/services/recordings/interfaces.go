package recordings

import (
	"context"
	"time"

	"github.com/floorline/recorder-api/internal/models"
)

// Service defines the interface for recording operations
type Service interface {
	// CreateRecording stores a new recording with its audio payload
	CreateRecording(ctx context.Context, recording *models.Recording) error

	// GetRecording retrieves a recording with its audio payload
	GetRecording(ctx context.Context, id uint) (*models.Recording, error)

	// ListRecordings returns recordings without audio payloads, optionally
	// filtered by location (0 means all locations)
	ListRecordings(ctx context.Context, locationID uint) ([]models.Recording, error)

	// DeleteRecording removes a recording
	DeleteRecording(ctx context.Context, id uint) error

	// CommitTranscription writes a backend-produced transcription only if the
	// recording is still untranscribed. Returns false when another job
	// committed first.
	CommitTranscription(ctx context.Context, id uint, text string, at time.Time, meta models.JSONMap) (bool, error)

	// OverwriteTranscription unconditionally sets the transcription text.
	// This is the manual correction path.
	OverwriteTranscription(ctx context.Context, id uint, text string, at time.Time) error
}

// Repository defines the interface for recording persistence
type Repository interface {
	Create(ctx context.Context, recording *models.Recording) error
	GetByID(ctx context.Context, id uint) (*models.Recording, error)
	List(ctx context.Context, locationID uint) ([]models.Recording, error)
	Delete(ctx context.Context, id uint) error
	CommitTranscription(ctx context.Context, id uint, text string, at time.Time, meta models.JSONMap) (bool, error)
	OverwriteTranscription(ctx context.Context, id uint, text string, at time.Time) error
}
