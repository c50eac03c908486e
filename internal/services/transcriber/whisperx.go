package transcriber

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"time"
)

//go:embed assets/transcribe_whisperx.py
var whisperXScript []byte

// WhisperXAdapter runs the local diarization-capable WhisperX engine through
// an embedded python helper. Diarization needs a HuggingFace token; without
// one the helper still transcribes and notes that speaker separation was
// skipped.
type WhisperXAdapter struct {
	runner *scriptRunner
	script []byte
}

// NewWhisperXAdapter creates the WhisperX adapter. Alignment and diarization
// make this roughly twice as slow as the single-pass engine, hence the longer
// deadline.
func NewWhisperXAdapter(pythonPath string, timeout time.Duration) *WhisperXAdapter {
	return &WhisperXAdapter{
		runner: newScriptRunner(pythonPath, timeout),
		script: whisperXScript,
	}
}

// Backend identifies this adapter's engine.
func (a *WhisperXAdapter) Backend() Backend {
	return BackendWhisperX
}

type whisperXSegment struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
	Speaker string  `json:"speaker"`
}

type whisperXSpeakers struct {
	Seller        string   `json:"seller"`
	Client        string   `json:"client"`
	TotalSpeakers int      `json:"total_speakers"`
	AllSpeakers   []string `json:"all_speakers"`
	Note          string   `json:"note"`
	Error         string   `json:"error"`
}

// whisperXOutput is the helper's stdout record.
type whisperXOutput struct {
	Success    *bool             `json:"success"`
	Text       string            `json:"text"`
	Dialogue   string            `json:"dialogue"`
	SellerText string            `json:"seller_text"`
	ClientText string            `json:"client_text"`
	Speakers   *whisperXSpeakers `json:"speakers"`
	Segments   []whisperXSegment `json:"segments"`
	Language   string            `json:"language"`
	ModelUsed  string            `json:"model_used"`
	Error      string            `json:"error"`
}

// Transcribe runs one WhisperX pass with word alignment and, when a token is
// supplied, speaker diarization.
func (a *WhisperXAdapter) Transcribe(ctx context.Context, audioPath string, params Params) (*Result, error) {
	args := []string{audioPath, params.Language, params.Model}
	if params.HFToken != "" {
		args = append(args, params.HFToken)
	}

	stdout, perr := a.runner.run(ctx, a.script, "transcribe_whisperx", args)
	if perr != nil {
		return nil, perr
	}

	var out whisperXOutput
	if err := json.Unmarshal(bytes.TrimSpace(stdout), &out); err != nil || out.Success == nil {
		return nil, malformedOutput(stdout)
	}

	if !*out.Success {
		return nil, classify(out.Error)
	}

	result := &Result{
		Text:       out.Text,
		Language:   out.Language,
		Model:      out.ModelUsed,
		Dialogue:   out.Dialogue,
		SellerText: out.SellerText,
		ClientText: out.ClientText,
		ProducedAt: time.Now().UTC(),
	}
	if result.Model == "" {
		result.Model = "whisperx-" + params.Model
	}

	if out.Speakers != nil {
		result.Speakers = &Speakers{
			Seller:        out.Speakers.Seller,
			Client:        out.Speakers.Client,
			TotalSpeakers: out.Speakers.TotalSpeakers,
			AllSpeakers:   out.Speakers.AllSpeakers,
			Note:          out.Speakers.Note,
			Error:         out.Speakers.Error,
		}
	}
	for _, seg := range out.Segments {
		result.Segments = append(result.Segments, Segment{
			Speaker: seg.Speaker,
			Start:   seg.Start,
			End:     seg.End,
			Text:    seg.Text,
		})
	}

	return result, nil
}
