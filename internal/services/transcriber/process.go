package transcriber

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// killWaitDelay bounds how long a killed helper may keep its output pipes
// open before the runner gives up on draining them.
const killWaitDelay = 2 * time.Second

// scriptRunner executes an embedded python helper script in a subprocess and
// accumulates its output streams in full. Stream accumulation runs
// concurrently with the process so a chatty helper never stalls on a full
// pipe buffer.
type scriptRunner struct {
	pythonPath string
	timeout    time.Duration
}

func newScriptRunner(pythonPath string, timeout time.Duration) *scriptRunner {
	if pythonPath == "" {
		pythonPath = "python3"
	}
	return &scriptRunner{pythonPath: pythonPath, timeout: timeout}
}

// run writes the helper script to a transient file, executes it with the
// given arguments under the configured deadline, and returns the accumulated
// stdout. Every failure mode comes back as a single classified *Error:
// missing interpreter, deadline expiry (the process is killed), or a
// non-zero exit classified against the stderr signature table.
func (s *scriptRunner) run(ctx context.Context, script []byte, name string, args []string) ([]byte, *Error) {
	scriptFile, err := os.CreateTemp("", name+"_*.py")
	if err != nil {
		return nil, newError(KindBackendFailure, "Failed to stage transcription helper.", err.Error())
	}
	scriptPath := scriptFile.Name()
	defer os.Remove(scriptPath)

	if _, err := scriptFile.Write(script); err != nil {
		scriptFile.Close()
		return nil, newError(KindBackendFailure, "Failed to stage transcription helper.", err.Error())
	}
	if err := scriptFile.Close(); err != nil {
		return nil, newError(KindBackendFailure, "Failed to stage transcription helper.", err.Error())
	}

	runCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, s.pythonPath, append([]string{scriptPath}, args...)...)
	// The helpers fork workers (faster-whisper shells out to ffmpeg), so the
	// whole tree runs in its own process group and a deadline kill reaches
	// every descendant. Otherwise a surviving child keeps the output pipes
	// open and Run blocks until it exits, not until the deadline.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	cmd.WaitDelay = killWaitDelay
	// Unbuffered output keeps the stdout JSON line and stderr diagnostics
	// reliable when the process is killed mid-run.
	cmd.Env = append(os.Environ(), "PYTHONUNBUFFERED=1")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return nil, newError(
			KindTimeout,
			fmt.Sprintf("Transcription did not finish within %s and was stopped.", s.timeout),
			stderr.String(),
		)
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return nil, classify(stderr.String())
		}
		// The process never started: interpreter missing or not executable.
		if errors.Is(runErr, exec.ErrNotFound) || os.IsNotExist(runErr) {
			return nil, newError(
				KindDependencyMissing,
				"Python interpreter not found on the server. Contact the administrator.",
				runErr.Error(),
			)
		}
		return nil, newError(KindBackendFailure, "Failed to start transcription process.", runErr.Error())
	}

	return stdout.Bytes(), nil
}
