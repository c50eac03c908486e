package recordings

import (
	"context"
	"errors"
	"time"

	"github.com/floorline/recorder-api/internal/models"
	"gorm.io/gorm"
)

// ErrRecordingNotFound is returned when the requested recording does not exist
var ErrRecordingNotFound = errors.New("recording not found")

// service implements the Service interface
type service struct {
	repo Repository
}

// NewService creates a new recording service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateRecording stores a new recording with its audio payload
func (s *service) CreateRecording(ctx context.Context, recording *models.Recording) error {
	if recording == nil {
		return errors.New("recording cannot be nil")
	}
	if !recording.HasAudio() {
		return errors.New("recording has no audio payload")
	}
	recording.SizeBytes = int64(len(recording.AudioData))

	return s.repo.Create(ctx, recording)
}

// GetRecording retrieves a recording with its audio payload
func (s *service) GetRecording(ctx context.Context, id uint) (*models.Recording, error) {
	recording, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if recording == nil {
		return nil, ErrRecordingNotFound
	}
	return recording, nil
}

// ListRecordings returns recordings without audio payloads
func (s *service) ListRecordings(ctx context.Context, locationID uint) ([]models.Recording, error) {
	return s.repo.List(ctx, locationID)
}

// DeleteRecording removes a recording
func (s *service) DeleteRecording(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordingNotFound
	}
	return err
}

// CommitTranscription writes a backend-produced transcription at most once
func (s *service) CommitTranscription(ctx context.Context, id uint, text string, at time.Time, meta models.JSONMap) (bool, error) {
	return s.repo.CommitTranscription(ctx, id, text, at, meta)
}

// OverwriteTranscription unconditionally sets the transcription text
func (s *service) OverwriteTranscription(ctx context.Context, id uint, text string, at time.Time) error {
	err := s.repo.OverwriteTranscription(ctx, id, text, at)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordingNotFound
	}
	return err
}
