package transcriber

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/floorline/recorder-api/internal/models"
	"github.com/floorline/recorder-api/internal/services/recordings"
)

// Defaults carries the server-side parameter defaults applied when a request
// omits them.
type Defaults struct {
	Language string
	Model    string
	HFToken  string
}

// Service is the request-level transcription orchestrator: it decides whether
// a recording needs transcription at all, selects the backend and parameters,
// runs the job, and commits the result at most once.
type Service struct {
	store    recordings.Service
	runner   *Runner
	adapters map[Backend]Adapter
	defaults Defaults
}

// NewService creates the orchestrator over the given adapters.
func NewService(store recordings.Service, runner *Runner, adapters []Adapter, defaults Defaults) *Service {
	if defaults.Language == "" {
		defaults.Language = "ru"
	}
	if defaults.Model == "" {
		defaults.Model = "small"
	}

	byBackend := make(map[Backend]Adapter, len(adapters))
	for _, adapter := range adapters {
		byBackend[adapter.Backend()] = adapter
	}

	return &Service{
		store:    store,
		runner:   runner,
		adapters: byBackend,
		defaults: defaults,
	}
}

// Options are the caller-supplied knobs for one transcription request.
type Options struct {
	Model   string // model tier; empty means the configured default
	HFToken string // diarization credential; empty means the configured default
}

// Outcome is the answer to one transcribe request.
type Outcome struct {
	RecordingID   uint
	Text          string
	TranscribedAt time.Time
	// AlreadyTranscribed is true when the stored result was returned and no
	// job ran (or a concurrent job committed first).
	AlreadyTranscribed bool
	// Result carries the freshly produced details; nil when
	// AlreadyTranscribed.
	Result *Result
}

// Transcribe runs one transcription attempt against a recording.
//
// Already-transcribed recordings short-circuit to the stored text without
// spawning anything. The commit is a compare-and-swap: if a concurrent job
// wins the race, this attempt's result is discarded and the winner's stored
// text is returned.
func (s *Service) Transcribe(ctx context.Context, recordingID uint, backend Backend, opts Options) (*Outcome, error) {
	rec, err := s.store.GetRecording(ctx, recordingID)
	if err != nil {
		return nil, err
	}

	if rec.IsTranscribed() {
		log.Printf("[DEBUG] Recording %d already transcribed, returning stored result", recordingID)
		return s.storedOutcome(rec), nil
	}

	if !rec.HasAudio() {
		return nil, newError(KindMissingAudio, "Recording has no audio payload.", "")
	}

	adapter, ok := s.adapters[backend]
	if !ok {
		return nil, fmt.Errorf("no adapter registered for backend %q", backend)
	}

	params := Params{
		Language: s.defaults.Language,
		Model:    s.defaults.Model,
		HFToken:  s.defaults.HFToken,
	}
	if opts.Model != "" {
		params.Model = opts.Model
	}
	if opts.HFToken != "" {
		params.HFToken = opts.HFToken
	}

	result, err := s.runner.Run(ctx, rec, adapter, params)
	if err != nil {
		return nil, err
	}

	committed, err := s.store.CommitTranscription(ctx, rec.ID, result.Text, result.ProducedAt, metadataFor(result))
	if err != nil {
		return nil, fmt.Errorf("failed to save transcription for recording %d: %w", rec.ID, err)
	}

	if !committed {
		// A concurrent job committed first; its write stands.
		log.Printf("[WARN] Recording %d was transcribed concurrently, discarding this result", rec.ID)
		current, err := s.store.GetRecording(ctx, rec.ID)
		if err != nil {
			return nil, err
		}
		return s.storedOutcome(current), nil
	}

	log.Printf("[DEBUG] Committed %s transcription for recording %d (%d characters)",
		backend, rec.ID, len(result.Text))

	return &Outcome{
		RecordingID:   rec.ID,
		Text:          result.Text,
		TranscribedAt: result.ProducedAt,
		Result:        result,
	}, nil
}

// SetTranscript commits operator-supplied text directly, bypassing any
// backend. Unlike backend results this overwrites an existing transcription;
// manual correction is the point of this path.
func (s *Service) SetTranscript(ctx context.Context, recordingID uint, text string) (*Outcome, error) {
	if _, err := s.store.GetRecording(ctx, recordingID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.store.OverwriteTranscription(ctx, recordingID, text, now); err != nil {
		return nil, err
	}

	return &Outcome{
		RecordingID:   recordingID,
		Text:          text,
		TranscribedAt: now,
	}, nil
}

func (s *Service) storedOutcome(rec *models.Recording) *Outcome {
	outcome := &Outcome{
		RecordingID:        rec.ID,
		Text:               rec.Transcription,
		AlreadyTranscribed: true,
	}
	if rec.TranscribedAt != nil {
		outcome.TranscribedAt = *rec.TranscribedAt
	}
	return outcome
}

// metadataFor builds the structured attachment persisted alongside diarizing
// results. Plain results carry no attachment.
func metadataFor(result *Result) models.JSONMap {
	if !result.HasDiarization() && result.Dialogue == "" {
		return nil
	}

	meta := models.JSONMap{
		"model":    result.Model,
		"language": result.Language,
	}
	if result.Dialogue != "" {
		meta["dialogue"] = result.Dialogue
	}
	if result.SellerText != "" {
		meta["seller_text"] = result.SellerText
	}
	if result.ClientText != "" {
		meta["client_text"] = result.ClientText
	}
	if result.Speakers != nil {
		meta["speakers"] = result.Speakers
	}
	if len(result.Segments) > 0 {
		meta["segments"] = result.Segments
	}
	return meta
}
