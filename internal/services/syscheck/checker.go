// Package syscheck probes the external tools the transcription pipeline
// depends on. It is a read-only diagnostic: no job is run and nothing is
// mutated.
package syscheck

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"syscall"
	"time"
)

// Status is the probe outcome for one dependency.
type Status string

const (
	StatusOK      Status = "ok"
	StatusMissing Status = "missing"
	StatusError   Status = "error"
)

// Dependency is the probe result for one external tool.
type Dependency struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Version string `json:"version,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Report is the combined probe outcome.
type Report struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Healthy     bool         `json:"healthy"`
	Deps        []Dependency `json:"dependencies"`
}

// commandRunner abstracts process execution for testability.
type commandRunner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// execRunner executes version probes via os/exec with combined output.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	// Group kill on timeout: a probe that forks must not hold the combined
	// output pipe open past its deadline.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	cmd.WaitDelay = 2 * time.Second
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.String(), err
}

// Checker probes the python interpreter, the transcription toolkits and the
// audio codec tool.
type Checker struct {
	pythonPath string
	ffmpegPath string
	timeout    time.Duration
	runner     commandRunner
}

// NewChecker builds a checker using real OS process execution.
func NewChecker(pythonPath, ffmpegPath string) *Checker {
	if pythonPath == "" {
		pythonPath = "python3"
	}
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &Checker{
		pythonPath: pythonPath,
		ffmpegPath: ffmpegPath,
		timeout:    15 * time.Second,
		runner:     execRunner{},
	}
}

// Run executes all probes and returns a combined report.
func (c *Checker) Run(ctx context.Context) Report {
	deps := []Dependency{
		c.probe(ctx, "python", c.pythonPath, "--version"),
		c.probe(ctx, "faster-whisper", c.pythonPath, "-c", "import faster_whisper; print(faster_whisper.__version__)"),
		c.probe(ctx, "whisperx", c.pythonPath, "-c", "import whisperx; print(whisperx.__version__)"),
		c.probe(ctx, "ffmpeg", c.ffmpegPath, "-version"),
	}

	healthy := true
	for _, dep := range deps {
		if dep.Status != StatusOK {
			healthy = false
			break
		}
	}

	return Report{
		GeneratedAt: time.Now().UTC(),
		Healthy:     healthy,
		Deps:        deps,
	}
}

// probe runs one version command and classifies its outcome.
func (c *Checker) probe(ctx context.Context, name, command string, args ...string) Dependency {
	probeCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	output, err := c.runner.Run(probeCtx, command, args...)
	if err != nil {
		dep := Dependency{Name: name, Status: StatusError, Error: strings.TrimSpace(output)}
		if dep.Error == "" {
			dep.Error = err.Error()
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// The command never ran: binary not on PATH.
			dep.Status = StatusMissing
		}
		return dep
	}

	return Dependency{
		Name:    name,
		Status:  StatusOK,
		Version: firstLine(output),
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
