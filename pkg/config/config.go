package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("RECORDER")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		fmt.Println("Warning: No database path configured")
	}

	if err := validateSecrets(); err != nil {
		return err
	}

	if !validModel(viper.GetString("transcription.default_model")) {
		return fmt.Errorf("invalid transcription model: %s", viper.GetString("transcription.default_model"))
	}

	if viper.GetDuration("transcription.whisper_timeout") <= 0 {
		viper.Set("transcription.whisper_timeout", 5*time.Minute)
	}
	if viper.GetDuration("transcription.whisperx_timeout") <= 0 {
		viper.Set("transcription.whisperx_timeout", 10*time.Minute)
	}

	return nil
}

// validateSecrets validates that secrets are not using placeholder values
func validateSecrets() error {
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	placeholders := []string{
		"YOUR_KEY_HERE",
		"YOUR_SECRET_HERE",
		"changeme",
		"CHANGEME",
	}

	jwtSecret := viper.GetString("auth.jwt_secret")
	for _, placeholder := range placeholders {
		if jwtSecret == placeholder {
			if isProduction {
				return fmt.Errorf("invalid JWT secret: cannot use placeholder values in production")
			}
			fmt.Println("Warning: JWT secret is using a placeholder value - this is insecure!")
			break
		}
	}
	if jwtSecret == "" && isProduction {
		return fmt.Errorf("auth.jwt_secret is required in production")
	}

	return nil
}

// ModelTiers is the ordered set of supported local model sizes.
var ModelTiers = []string{"tiny", "base", "small", "medium", "large"}

func validModel(model string) bool {
	for _, tier := range ModelTiers {
		if model == tier {
			return true
		}
	}
	return false
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if !validModel(c.Transcription.DefaultModel) {
		return fmt.Errorf("invalid transcription model: %s", c.Transcription.DefaultModel)
	}

	if c.Transcription.WhisperTimeout <= 0 {
		c.Transcription.WhisperTimeout = 5 * time.Minute
	}
	if c.Transcription.WhisperXTimeout <= 0 {
		c.Transcription.WhisperXTimeout = 10 * time.Minute
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	// Transcription answers synchronously, so the write timeout must cover
	// a full local whisperx run.
	viper.SetDefault("server.read_timeout", 5*time.Minute)
	viper.SetDefault("server.write_timeout", 15*time.Minute)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/recorder.db")
	viper.SetDefault("database.verbose", false)

	// Auth defaults
	viper.SetDefault("auth.jwt_secret", "")
	viper.SetDefault("auth.token_ttl", 24*time.Hour)

	// Upload defaults
	viper.SetDefault("upload.max_bytes", 50*1024*1024)

	// Transcription defaults. Russian with the small model is the
	// accuracy/resource sweet spot for floor conversations.
	viper.SetDefault("transcription.python_path", "python3")
	viper.SetDefault("transcription.language", "ru")
	viper.SetDefault("transcription.default_model", "small")
	viper.SetDefault("transcription.temp_dir", os.TempDir())
	viper.SetDefault("transcription.whisper_timeout", 5*time.Minute)
	viper.SetDefault("transcription.whisperx_timeout", 10*time.Minute)
	viper.SetDefault("transcription.hf_token", "")
	viper.SetDefault("transcription.openai_api_key", "")
	viper.SetDefault("transcription.hosted_model", "whisper-1")
	viper.SetDefault("transcription.ffmpeg_path", "ffmpeg")
}
