package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordingHasAudio(t *testing.T) {
	rec := &Recording{}
	assert.False(t, rec.HasAudio())

	rec.AudioData = []byte{0x00, 0x01}
	assert.True(t, rec.HasAudio())
}

func TestRecordingIsTranscribed(t *testing.T) {
	rec := &Recording{}
	assert.False(t, rec.IsTranscribed())

	now := time.Now()
	rec.Transcription = "привет"
	rec.TranscribedAt = &now
	assert.True(t, rec.IsTranscribed())
}

func TestJSONMapValueScan(t *testing.T) {
	m := JSONMap{
		"total_speakers": float64(2),
		"seller":         "SPEAKER_00",
	}

	value, err := m.Value()
	require.NoError(t, err)

	var scanned JSONMap
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, m, scanned)
}

func TestJSONMapScanNil(t *testing.T) {
	var m JSONMap
	require.NoError(t, m.Scan(nil))
	assert.NotNil(t, m)
	assert.Empty(t, m)
}

func TestJSONMapScanString(t *testing.T) {
	var m JSONMap
	require.NoError(t, m.Scan(`{"client":"SPEAKER_01"}`))
	assert.Equal(t, "SPEAKER_01", m["client"])
}

func TestJSONMapScanInvalidType(t *testing.T) {
	var m JSONMap
	assert.Error(t, m.Scan(42))
}

func TestUserIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: "admin"}).IsAdmin())
	assert.False(t, (&User{Role: "seller"}).IsAdmin())
}
