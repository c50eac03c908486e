package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment   string              `mapstructure:"environment"`
	Server        ServerConfig        `mapstructure:"server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Auth          AuthConfig          `mapstructure:"auth"`
	Upload        UploadConfig        `mapstructure:"upload"`
	Transcription TranscriptionConfig `mapstructure:"transcription"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig holds sqlite settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// AuthConfig holds JWT settings
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// UploadConfig holds recording upload limits
type UploadConfig struct {
	MaxBytes int64 `mapstructure:"max_bytes"`
}

// TranscriptionConfig holds settings for the transcription pipeline
type TranscriptionConfig struct {
	PythonPath      string        `mapstructure:"python_path"`
	Language        string        `mapstructure:"language"`
	DefaultModel    string        `mapstructure:"default_model"`
	TempDir         string        `mapstructure:"temp_dir"`
	WhisperTimeout  time.Duration `mapstructure:"whisper_timeout"`
	WhisperXTimeout time.Duration `mapstructure:"whisperx_timeout"`
	HFToken         string        `mapstructure:"hf_token"`
	OpenAIAPIKey    string        `mapstructure:"openai_api_key"`
	HostedModel     string        `mapstructure:"hosted_model"`
	FFmpegPath      string        `mapstructure:"ffmpeg_path"`
}
