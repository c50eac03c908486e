package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validTestConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Database: DatabaseConfig{Path: "./data/recorder.db"},
		Transcription: TranscriptionConfig{
			PythonPath:      "python3",
			Language:        "ru",
			DefaultModel:    "small",
			WhisperTimeout:  5 * time.Minute,
			WhisperXTimeout: 10 * time.Minute,
		},
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := validTestConfig()
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidateInvalidPort(t *testing.T) {
	tests := []struct {
		name string
		port int
	}{
		{"zero port", 0},
		{"negative port", -1},
		{"port too large", 70000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			cfg.Server.Port = tt.port
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfigValidateInvalidModel(t *testing.T) {
	cfg := validTestConfig()
	cfg.Transcription.DefaultModel = "huge"
	assert.Error(t, cfg.Validate())
}

func TestConfigValidateDefaultsTimeouts(t *testing.T) {
	cfg := validTestConfig()
	cfg.Transcription.WhisperTimeout = 0
	cfg.Transcription.WhisperXTimeout = 0

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 5*time.Minute, cfg.Transcription.WhisperTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Transcription.WhisperXTimeout)
}

func TestValidModel(t *testing.T) {
	for _, tier := range ModelTiers {
		assert.True(t, validModel(tier), tier)
	}
	assert.False(t, validModel("enormous"))
	assert.False(t, validModel(""))
}
