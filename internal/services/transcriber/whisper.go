package transcriber

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"time"
)

//go:embed assets/transcribe_fw.py
var whisperScript []byte

// WhisperAdapter runs the local single-pass faster-whisper engine through an
// embedded python helper. The helper emits exactly one JSON object on stdout;
// all progress and diagnostics go to stderr.
type WhisperAdapter struct {
	runner *scriptRunner
	script []byte
}

// NewWhisperAdapter creates the faster-whisper adapter. The timeout bounds
// one full transcription attempt including model load.
func NewWhisperAdapter(pythonPath string, timeout time.Duration) *WhisperAdapter {
	return &WhisperAdapter{
		runner: newScriptRunner(pythonPath, timeout),
		script: whisperScript,
	}
}

// Backend identifies this adapter's engine.
func (a *WhisperAdapter) Backend() Backend {
	return BackendWhisper
}

// whisperOutput is the helper's stdout record. Success is a pointer so a
// record missing the discriminant is distinguishable from success=false.
type whisperOutput struct {
	Success             *bool   `json:"success"`
	Text                string  `json:"text"`
	Language            string  `json:"language"`
	LanguageProbability float64 `json:"language_probability"`
	Duration            float64 `json:"duration"`
	Error               string  `json:"error"`
}

// Transcribe runs one faster-whisper pass over the audio file.
func (a *WhisperAdapter) Transcribe(ctx context.Context, audioPath string, params Params) (*Result, error) {
	args := []string{audioPath, params.Language, params.Model}

	stdout, perr := a.runner.run(ctx, a.script, "transcribe_fw", args)
	if perr != nil {
		return nil, perr
	}

	var out whisperOutput
	if err := json.Unmarshal(bytes.TrimSpace(stdout), &out); err != nil || out.Success == nil {
		return nil, malformedOutput(stdout)
	}

	if !*out.Success {
		// Declared failures carry the engine's own error text; run it
		// through the same signature table as crash output.
		return nil, classify(out.Error)
	}

	return &Result{
		Text:                out.Text,
		Language:            out.Language,
		LanguageProbability: out.LanguageProbability,
		Duration:            out.Duration,
		Model:               "faster-whisper-" + params.Model,
		ProducedAt:          time.Now().UTC(),
	}, nil
}
