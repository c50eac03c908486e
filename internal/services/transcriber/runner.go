package transcriber

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/floorline/recorder-api/internal/models"
	"github.com/google/uuid"
)

// Runner owns the lifecycle of one transcription attempt: it materializes the
// recording's audio payload to a uniquely named transient file, invokes the
// selected adapter, and removes the transient copy on every exit path.
type Runner struct {
	tempDir string
}

// NewRunner creates a job runner writing transient audio files under tempDir.
func NewRunner(tempDir string) *Runner {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &Runner{tempDir: tempDir}
}

// Run executes one transcription attempt end-to-end.
func (r *Runner) Run(ctx context.Context, rec *models.Recording, adapter Adapter, params Params) (*Result, error) {
	if rec == nil || !rec.HasAudio() {
		return nil, newError(KindMissingAudio, "Recording has no audio payload.", "")
	}

	audioPath, err := r.materialize(rec)
	if err != nil {
		return nil, newError(KindBackendFailure, "Failed to stage audio for transcription.", err.Error())
	}
	defer func() {
		// Best-effort removal; a cleanup failure must never mask the
		// primary result or error.
		if err := os.Remove(audioPath); err != nil && !os.IsNotExist(err) {
			log.Printf("[WARN] Failed to remove transient audio file %s: %v", audioPath, err)
		}
	}()

	log.Printf("[DEBUG] Running %s transcription for recording %d (%d bytes)",
		adapter.Backend(), rec.ID, len(rec.AudioData))

	return adapter.Transcribe(ctx, audioPath, params)
}

// materialize writes the audio payload to a collision-free transient file.
// The name combines the recording ID with a random suffix so concurrent jobs
// against the same recording never share a file.
func (r *Runner) materialize(rec *models.Recording) (string, error) {
	name := fmt.Sprintf("recording_%d_%s%s", rec.ID, uuid.NewString()[:8], audioExtension(rec.FileName))
	path := filepath.Join(r.tempDir, name)

	if err := os.WriteFile(path, rec.AudioData, 0o600); err != nil {
		return "", fmt.Errorf("write transient audio file: %w", err)
	}
	return path, nil
}

func audioExtension(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		// Mobile clients record m4a by default.
		return ".m4a"
	}
	return ext
}
