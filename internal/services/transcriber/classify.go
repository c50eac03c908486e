package transcriber

import "strings"

// signature maps a known substring in unstructured diagnostic output to an
// error kind and a user-facing message.
type signature struct {
	pattern string
	kind    ErrorKind
	message string
}

const (
	msgModuleNotInstalled = "Transcription engine is not installed on the server. Contact the administrator."
	msgResourceExhausted  = "Insufficient server resources for transcription. Try again later."
	msgCredentialRejected = "Diarization credential was rejected. Check the HuggingFace token configuration."
)

// signatures is the fixed, ordered classification table. First match wins, so
// more specific patterns come before broader ones. Matching against stderr
// text is inherently best-effort: upgrading faster-whisper or WhisperX may
// change diagnostic wording and silently break classification, so keep this
// table in sync with captured samples in classify_test.go.
var signatures = []signature{
	{"ModuleNotFoundError", KindModuleNotInstalled, msgModuleNotInstalled},
	{"No module named", KindModuleNotInstalled, msgModuleNotInstalled},
	{"ImportError", KindModuleNotInstalled, msgModuleNotInstalled},
	{"CUDA out of memory", KindResourceExhausted, msgResourceExhausted},
	{"CUDA error", KindResourceExhausted, msgResourceExhausted},
	{"MemoryError", KindResourceExhausted, msgResourceExhausted},
	{"out of memory", KindResourceExhausted, msgResourceExhausted},
	{"Killed", KindResourceExhausted, msgResourceExhausted},
	{"401 Client Error", KindCredentialRejected, msgCredentialRejected},
	{"Invalid user token", KindCredentialRejected, msgCredentialRejected},
	{"private or gated", KindCredentialRejected, msgCredentialRejected},
	{"use_auth_token", KindCredentialRejected, msgCredentialRejected},
}

// classify maps accumulated diagnostic text to the first matching signature
// in table order. Text with no known signature becomes a backend failure
// carrying the raw output.
func classify(diagnostic string) *Error {
	for _, sig := range signatures {
		if strings.Contains(diagnostic, sig.pattern) {
			return newError(sig.kind, sig.message, strings.TrimSpace(diagnostic))
		}
	}
	return newError(
		KindBackendFailure,
		"Transcription failed. Contact the administrator.",
		strings.TrimSpace(diagnostic),
	)
}
