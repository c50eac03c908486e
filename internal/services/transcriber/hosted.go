package transcriber

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// hostedClient is the slice of the OpenAI client the adapter uses.
type hostedClient interface {
	CreateTranscription(ctx context.Context, request openai.AudioRequest) (openai.AudioResponse, error)
}

// HostedAdapter sends audio to the OpenAI speech-to-text API. The call is
// synchronous and bounded by the HTTP client's own timeout; no subprocess is
// involved. Without a configured API key the adapter fails closed.
type HostedAdapter struct {
	client hostedClient
	model  string
}

// NewHostedAdapter creates the hosted adapter. An empty apiKey leaves the
// adapter unconfigured; requests then fail with a service-unavailable error
// instead of falling back to any default credentials.
func NewHostedAdapter(apiKey, model string) *HostedAdapter {
	if model == "" {
		model = openai.Whisper1
	}
	adapter := &HostedAdapter{model: model}
	if apiKey != "" {
		adapter.client = openai.NewClient(apiKey)
	}
	return adapter
}

// Backend identifies this adapter's engine.
func (a *HostedAdapter) Backend() Backend {
	return BackendHosted
}

// Transcribe uploads the audio file to the hosted provider.
func (a *HostedAdapter) Transcribe(ctx context.Context, audioPath string, params Params) (*Result, error) {
	if a.client == nil {
		return nil, newError(
			KindServiceUnavailable,
			"Hosted transcription is not configured. Contact the administrator.",
			"no API key configured",
		)
	}

	resp, err := a.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    a.model,
		FilePath: audioPath,
		Language: params.Language,
	})
	if err != nil {
		return nil, classifyHostedError(err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return nil, malformedOutput([]byte(resp.Text))
	}

	return &Result{
		Text:       text,
		Language:   params.Language,
		Model:      a.model,
		ProducedAt: time.Now().UTC(),
	}, nil
}

// classifyHostedError distinguishes quota, billing, auth and format failures
// by the provider's status code.
func classifyHostedError(err error) *Error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return newError(
				KindServiceUnavailable,
				"Hosted transcription provider rejected the API credentials. Contact the administrator.",
				apiErr.Error(),
			)
		case http.StatusPaymentRequired:
			return newError(
				KindServiceUnavailable,
				"Hosted transcription provider reports a billing problem. Contact the administrator.",
				apiErr.Error(),
			)
		case http.StatusTooManyRequests:
			return newError(
				KindServiceUnavailable,
				"Hosted transcription provider quota exceeded. Try again later.",
				apiErr.Error(),
			)
		case http.StatusBadRequest, http.StatusUnsupportedMediaType:
			return newError(
				KindUnsupportedFormat,
				"The audio format was rejected by the hosted transcription provider.",
				apiErr.Error(),
			)
		}
	}
	return newError(
		KindServiceUnavailable,
		"Hosted transcription provider is unavailable. Try again later.",
		err.Error(),
	)
}
