package types

import (
	"context"

	"github.com/floorline/recorder-api/internal/database"
	"github.com/floorline/recorder-api/internal/services/auth"
	"github.com/floorline/recorder-api/internal/services/locations"
	"github.com/floorline/recorder-api/internal/services/recordings"
	"github.com/floorline/recorder-api/internal/services/syscheck"
	"github.com/floorline/recorder-api/internal/services/transcriber"
	"github.com/floorline/recorder-api/internal/services/users"
)

// Transcriber is the slice of the orchestrator the handlers use.
type Transcriber interface {
	Transcribe(ctx context.Context, recordingID uint, backend transcriber.Backend, opts transcriber.Options) (*transcriber.Outcome, error)
	SetTranscript(ctx context.Context, recordingID uint, text string) (*transcriber.Outcome, error)
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB               *database.DB
	AuthService      *auth.Service
	UserService      users.Service
	LocationService  locations.Service
	RecordingService recordings.Service
	Transcriber      Transcriber
	SysChecker       *syscheck.Checker
	MaxUploadBytes   int64
}
