package transcriber

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHostedClient struct {
	resp    openai.AudioResponse
	err     error
	calls   int
	request openai.AudioRequest
}

func (f *fakeHostedClient) CreateTranscription(ctx context.Context, request openai.AudioRequest) (openai.AudioResponse, error) {
	f.calls++
	f.request = request
	return f.resp, f.err
}

func TestHostedAdapterFailsClosedWithoutAPIKey(t *testing.T) {
	adapter := NewHostedAdapter("", "")

	_, err := adapter.Transcribe(context.Background(), "/tmp/a.m4a", Params{})

	require.Error(t, err)
	terr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindServiceUnavailable, terr.Kind)
}

func TestHostedAdapterSuccess(t *testing.T) {
	client := &fakeHostedClient{resp: openai.AudioResponse{Text: "  Добрый день!  "}}
	adapter := &HostedAdapter{client: client, model: openai.Whisper1}

	result, err := adapter.Transcribe(context.Background(), "/tmp/a.m4a", Params{Language: "ru"})

	require.NoError(t, err)
	assert.Equal(t, "Добрый день!", result.Text)
	assert.Equal(t, "ru", result.Language)
	assert.Equal(t, openai.Whisper1, result.Model)

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "/tmp/a.m4a", client.request.FilePath)
	assert.Equal(t, "ru", client.request.Language)
}

func TestHostedAdapterEmptyTextIsMalformed(t *testing.T) {
	client := &fakeHostedClient{resp: openai.AudioResponse{Text: "   "}}
	adapter := &HostedAdapter{client: client, model: openai.Whisper1}

	_, err := adapter.Transcribe(context.Background(), "/tmp/a.m4a", Params{})

	require.Error(t, err)
	terr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindMalformedOutput, terr.Kind)
}

func TestClassifyHostedError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantKind ErrorKind
	}{
		{"unauthorized", 401, KindServiceUnavailable},
		{"forbidden", 403, KindServiceUnavailable},
		{"billing", 402, KindServiceUnavailable},
		{"quota", 429, KindServiceUnavailable},
		{"bad request", 400, KindUnsupportedFormat},
		{"unsupported media", 415, KindUnsupportedFormat},
		{"server error", 500, KindServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := &openai.APIError{HTTPStatusCode: tt.status, Message: "nope"}

			terr := classifyHostedError(apiErr)

			assert.Equal(t, tt.wantKind, terr.Kind)
			assert.NotEmpty(t, terr.Technical)
		})
	}
}

func TestClassifyHostedErrorPlainError(t *testing.T) {
	terr := classifyHostedError(errors.New("connection refused"))

	assert.Equal(t, KindServiceUnavailable, terr.Kind)
	assert.Equal(t, "connection refused", terr.Technical)
}
