package transcriber

import (
	"context"
	"time"
)

// Backend identifies one concrete transcription engine.
type Backend string

const (
	// BackendWhisper is the local single-pass faster-whisper engine.
	BackendWhisper Backend = "faster-whisper"
	// BackendWhisperX is the local diarization-capable WhisperX engine.
	BackendWhisperX Backend = "whisperx"
	// BackendHosted is the OpenAI hosted speech-to-text API.
	BackendHosted Backend = "hosted"
)

// Params carries the per-job tuning supplied by the caller.
type Params struct {
	Language string
	Model    string // tiny, base, small, medium or large
	HFToken  string // optional diarization credential, whisperx only
}

// Adapter translates one engine's invocation mechanics into the uniform
// transcription contract. An implementation returns exactly one Result or
// exactly one classified *Error, never both, never a silent empty success.
type Adapter interface {
	Backend() Backend
	Transcribe(ctx context.Context, audioPath string, params Params) (*Result, error)
}

// Segment is one diarized slice of the conversation.
type Segment struct {
	Speaker string  `json:"speaker,omitempty"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
}

// Speakers aggregates the diarization outcome. Role attribution (seller vs
// client) is heuristic: the engine assumes the first detected speaker is the
// seller, and is not guaranteed accurate.
type Speakers struct {
	Seller        string   `json:"seller,omitempty"`
	Client        string   `json:"client,omitempty"`
	TotalSpeakers int      `json:"total_speakers,omitempty"`
	AllSpeakers   []string `json:"all_speakers,omitempty"`
	Note          string   `json:"note,omitempty"`
	Error         string   `json:"error,omitempty"`
}

// Result is a completed transcription.
type Result struct {
	Text                string
	Language            string
	LanguageProbability float64
	Duration            float64
	Model               string
	ProducedAt          time.Time

	// Diarizing backend only
	Dialogue   string
	SellerText string
	ClientText string
	Speakers   *Speakers
	Segments   []Segment
}

// HasDiarization reports whether the result carries speaker attribution.
func (r *Result) HasDiarization() bool {
	return r.Speakers != nil || len(r.Segments) > 0
}
