package recordings

import (
	"context"
	"errors"
	"time"

	"github.com/floorline/recorder-api/internal/models"
	"gorm.io/gorm"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new recording repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create stores a new recording
func (r *repository) Create(ctx context.Context, recording *models.Recording) error {
	if recording == nil {
		return errors.New("recording cannot be nil")
	}

	return r.db.WithContext(ctx).Create(recording).Error
}

// GetByID retrieves a recording including its audio payload
func (r *repository) GetByID(ctx context.Context, id uint) (*models.Recording, error) {
	var recording models.Recording

	result := r.db.WithContext(ctx).First(&recording, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return &recording, nil
}

// List returns recordings without the audio blob, newest first
func (r *repository) List(ctx context.Context, locationID uint) ([]models.Recording, error) {
	var recordings []models.Recording

	query := r.db.WithContext(ctx).Omit("audio_data").Order("created_at DESC")
	if locationID != 0 {
		query = query.Where("location_id = ?", locationID)
	}

	if err := query.Find(&recordings).Error; err != nil {
		return nil, err
	}

	return recordings, nil
}

// Delete removes a recording
func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Recording{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CommitTranscription writes the transcription only while the recording is
// still untranscribed. The guarded UPDATE is the at-most-one-successful-write
// point for concurrent jobs against the same recording.
func (r *repository) CommitTranscription(ctx context.Context, id uint, text string, at time.Time, meta models.JSONMap) (bool, error) {
	updates := map[string]interface{}{
		"transcription":  text,
		"transcribed_at": at,
	}
	if meta != nil {
		updates["transcription_meta"] = meta
	}

	result := r.db.WithContext(ctx).Model(&models.Recording{}).
		Where("id = ? AND (transcription IS NULL OR transcription = '')", id).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// OverwriteTranscription unconditionally replaces the transcription
func (r *repository) OverwriteTranscription(ctx context.Context, id uint, text string, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.Recording{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"transcription":  text,
			"transcribed_at": at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
