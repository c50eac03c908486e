package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Recording represents one uploaded sales-floor conversation.
//
// The audio payload is immutable once created; transcription jobs only ever
// read it. Transcription and TranscribedAt are written at most once by a
// successful backend job (compare-and-swap in the repository); the manual
// commit path may overwrite them.
type Recording struct {
	gorm.Model
	UserID     uint  `json:"user_id" gorm:"not null;index"`
	LocationID uint  `json:"location_id" gorm:"not null;index"`
	User       *User `json:"-" gorm:"foreignKey:UserID"`

	// Payload
	FileName    string `json:"file_name" gorm:"not null"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	AudioData   []byte `json:"-" gorm:"type:blob"`

	// Transcription result
	Transcription     string     `json:"transcription" gorm:"type:text"`
	TranscribedAt     *time.Time `json:"transcribed_at"`
	TranscriptionMeta JSONMap    `json:"transcription_meta,omitempty" gorm:"type:json"`

	Comment string `json:"comment"`
}

// HasAudio reports whether a non-empty audio payload is stored.
func (r *Recording) HasAudio() bool {
	return len(r.AudioData) > 0
}

// IsTranscribed reports whether a transcription has been committed.
func (r *Recording) IsTranscribed() bool {
	return r.Transcription != ""
}

// TableName specifies the table name for Recording
func (Recording) TableName() string {
	return "recordings"
}

// JSONMap is a JSON-serialized map column, used for the structured metadata
// attachment written by diarizing transcription jobs.
type JSONMap map[string]interface{}

// Value implements driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("type assertion to []byte failed")
	}
}
