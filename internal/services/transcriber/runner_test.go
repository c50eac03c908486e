package transcriber

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floorline/recorder-api/internal/models"
)

// fakeAdapter records the audio path it was handed and whether that file
// existed at call time.
type fakeAdapter struct {
	backend       Backend
	result        *Result
	err           error
	calls         int
	audioPath     string
	audioContents []byte
	params        Params
}

func (f *fakeAdapter) Backend() Backend {
	if f.backend == "" {
		return BackendWhisper
	}
	return f.backend
}

func (f *fakeAdapter) Transcribe(ctx context.Context, audioPath string, params Params) (*Result, error) {
	f.calls++
	f.audioPath = audioPath
	f.params = params
	f.audioContents, _ = os.ReadFile(audioPath)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func testRecording(id uint, audio []byte) *models.Recording {
	rec := &models.Recording{FileName: "floor.m4a", AudioData: audio}
	rec.ID = id
	return rec
}

func TestRunnerMaterializesAndCleansUp(t *testing.T) {
	dir := t.TempDir()
	runner := NewRunner(dir)
	adapter := &fakeAdapter{result: &Result{Text: "привет", ProducedAt: time.Now()}}

	result, err := runner.Run(context.Background(), testRecording(7, []byte("fake-audio")), adapter, Params{Language: "ru", Model: "small"})

	require.NoError(t, err)
	assert.Equal(t, "привет", result.Text)

	// The adapter saw the staged payload...
	assert.Equal(t, []byte("fake-audio"), adapter.audioContents)
	assert.True(t, strings.HasPrefix(filepath.Base(adapter.audioPath), "recording_7_"))
	assert.True(t, strings.HasSuffix(adapter.audioPath, ".m4a"))

	// ...and nothing is left behind afterwards.
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestRunnerCleansUpOnAdapterFailure(t *testing.T) {
	dir := t.TempDir()
	runner := NewRunner(dir)
	adapter := &fakeAdapter{err: newError(KindTimeout, "too slow", "")}

	_, err := runner.Run(context.Background(), testRecording(8, []byte("audio")), adapter, Params{})

	require.Error(t, err)
	terr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindTimeout, terr.Kind)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestRunnerMissingAudioFailsWithoutSpawning(t *testing.T) {
	runner := NewRunner(t.TempDir())
	adapter := &fakeAdapter{result: &Result{Text: "never"}}

	_, err := runner.Run(context.Background(), testRecording(9, nil), adapter, Params{})

	require.Error(t, err)
	terr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindMissingAudio, terr.Kind)
	assert.Zero(t, adapter.calls)

	_, err = runner.Run(context.Background(), nil, adapter, Params{})
	require.Error(t, err)
	assert.Zero(t, adapter.calls)
}

func TestRunnerUsesUniqueFileNames(t *testing.T) {
	runner := NewRunner(t.TempDir())
	rec := testRecording(3, []byte("audio"))

	first := &fakeAdapter{result: &Result{Text: "a"}}
	second := &fakeAdapter{result: &Result{Text: "b"}}

	_, err := runner.Run(context.Background(), rec, first, Params{})
	require.NoError(t, err)
	_, err = runner.Run(context.Background(), rec, second, Params{})
	require.NoError(t, err)

	assert.NotEqual(t, first.audioPath, second.audioPath)
}

func TestAudioExtension(t *testing.T) {
	tests := []struct {
		fileName string
		want     string
	}{
		{"recording.m4a", ".m4a"},
		{"Recording.MP3", ".mp3"},
		{"floor.wav", ".wav"},
		{"no-extension", ".m4a"},
		{"", ".m4a"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, audioExtension(tt.fileName), tt.fileName)
	}
}
