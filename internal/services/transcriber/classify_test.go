package transcriber

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		diagnostic string
		wantKind   ErrorKind
	}{
		{
			name: "module not found",
			diagnostic: `Traceback (most recent call last):
  File "/tmp/transcribe_fw_123.py", line 5, in <module>
    from faster_whisper import WhisperModel
ModuleNotFoundError: No module named 'faster_whisper'`,
			wantKind: KindModuleNotInstalled,
		},
		{
			name:       "no module named without traceback",
			diagnostic: "python3: No module named whisperx",
			wantKind:   KindModuleNotInstalled,
		},
		{
			name:       "import error",
			diagnostic: "ImportError: cannot import name 'WhisperModel'",
			wantKind:   KindModuleNotInstalled,
		},
		{
			name:       "cuda out of memory",
			diagnostic: "RuntimeError: CUDA out of memory. Tried to allocate 512.00 MiB",
			wantKind:   KindResourceExhausted,
		},
		{
			name:       "generic cuda error",
			diagnostic: "RuntimeError: CUDA error: device-side assert triggered",
			wantKind:   KindResourceExhausted,
		},
		{
			name:       "python memory error",
			diagnostic: "MemoryError",
			wantKind:   KindResourceExhausted,
		},
		{
			name:       "oom killed",
			diagnostic: "Killed",
			wantKind:   KindResourceExhausted,
		},
		{
			name:       "hf 401",
			diagnostic: "requests.exceptions.HTTPError: 401 Client Error: Unauthorized for url: https://huggingface.co/pyannote/speaker-diarization",
			wantKind:   KindCredentialRejected,
		},
		{
			name:       "invalid user token",
			diagnostic: "Invalid user token. Pass a valid token.",
			wantKind:   KindCredentialRejected,
		},
		{
			name:       "gated model",
			diagnostic: "Could not download model: it is private or gated, make sure to authenticate",
			wantKind:   KindCredentialRejected,
		},
		{
			name:       "unknown output",
			diagnostic: "something completely unexpected happened",
			wantKind:   KindBackendFailure,
		},
		{
			name:       "empty output",
			diagnostic: "",
			wantKind:   KindBackendFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(tt.diagnostic)
			assert.Equal(t, tt.wantKind, err.Kind)
			assert.NotEmpty(t, err.Message)
			assert.Equal(t, strings.TrimSpace(tt.diagnostic), err.Technical)
		})
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	// A python crash during model load can mention both the import machinery
	// and CUDA. Table order decides: module patterns sit above resource ones.
	diagnostic := "ModuleNotFoundError: No module named 'torch'\nhint: CUDA out of memory"

	err := classify(diagnostic)

	assert.Equal(t, KindModuleNotInstalled, err.Kind)
}

func TestClassifyFallbackCarriesRawOutput(t *testing.T) {
	diagnostic := "  RuntimeError: ffmpeg exited with code 1  "

	err := classify(diagnostic)

	assert.Equal(t, KindBackendFailure, err.Kind)
	assert.Equal(t, "RuntimeError: ffmpeg exited with code 1", err.Technical)
}
