package transcriber

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind categorizes a transcription failure into an actionable bucket.
type ErrorKind string

const (
	// KindMissingAudio means the recording has no binary payload to transcribe.
	KindMissingAudio ErrorKind = "missing_audio"
	// KindDependencyMissing means the interpreter or toolkit binary is absent on the host.
	KindDependencyMissing ErrorKind = "dependency_missing"
	// KindModuleNotInstalled means the backend python library is not installed.
	KindModuleNotInstalled ErrorKind = "module_not_installed"
	// KindResourceExhausted means the host ran out of memory or accelerator resources.
	KindResourceExhausted ErrorKind = "resource_exhausted"
	// KindCredentialRejected means the diarization credential was refused.
	KindCredentialRejected ErrorKind = "credential_rejected"
	// KindTimeout means the job deadline expired and the process was killed.
	KindTimeout ErrorKind = "timeout"
	// KindMalformedOutput means the process output was not the expected structured record.
	KindMalformedOutput ErrorKind = "malformed_output"
	// KindUnsupportedFormat means the audio payload was rejected by the engine.
	KindUnsupportedFormat ErrorKind = "unsupported_format"
	// KindServiceUnavailable means the hosted provider refused the request (quota, billing, auth).
	KindServiceUnavailable ErrorKind = "service_unavailable"
	// KindBackendFailure is the catch-all for non-zero exits with no known signature.
	KindBackendFailure ErrorKind = "backend_failure"
)

// Error is the single classified failure a transcription attempt produces.
// Message is safe to show to an admin; Technical carries the raw detail.
type Error struct {
	Kind      ErrorKind
	Message   string
	Technical string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Technical != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Technical)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// HTTPStatus returns the status code a handler should respond with.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindMissingAudio, KindUnsupportedFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func newError(kind ErrorKind, message, technical string) *Error {
	return &Error{Kind: kind, Message: message, Technical: technical}
}

// AsError extracts a classified transcription error from an error chain.
func AsError(err error) (*Error, bool) {
	var terr *Error
	if errors.As(err, &terr) {
		return terr, true
	}
	return nil, false
}

// outputPreviewLimit bounds the raw-output excerpt carried by malformed-output
// errors so error payloads stay small.
const outputPreviewLimit = 200

func malformedOutput(raw []byte) *Error {
	preview := string(raw)
	if len(preview) > outputPreviewLimit {
		preview = preview[:outputPreviewLimit]
	}
	return newError(
		KindMalformedOutput,
		"Transcription engine returned unreadable output. Contact the administrator.",
		preview,
	)
}
