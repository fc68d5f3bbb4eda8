package nativebuild

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"cosmossdk.io/log"
)

// CommandRunner executes a single CommandSpec and classifies the outcome.
//
// A non-zero exit code is a normal RunOutcome. The error return is reserved
// for commands that never ran properly: *SpawnError when the executable
// could not be launched, or an I/O failure while waiting. Timeouts are
// reported through RunOutcome.TimedOut.
type CommandRunner interface {
	Run(ctx context.Context, spec *CommandSpec) (*RunOutcome, error)
}

// ExecRunner runs commands through os/exec. Stdout and stderr are captured
// fully for attribution in the BuildResult; an optional Tee writer
// additionally mirrors both streams to a live console.
type ExecRunner struct {
	logger log.Logger

	// Tee, when set, receives the child's combined output as it is
	// produced.
	Tee io.Writer
}

// NewExecRunner returns an ExecRunner logging through the given logger.
// A nil logger disables logging.
func NewExecRunner(logger log.Logger) *ExecRunner {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &ExecRunner{logger: logger}
}

// Run executes spec with its working directory and environment, waiting for
// completion or context cancellation. On cancellation the child process and
// its descendants are terminated (process-group kill on unix).
func (r *ExecRunner) Run(ctx context.Context, spec *CommandSpec) (*RunOutcome, error) {
	cmd := exec.CommandContext(ctx, spec.Path, spec.Args...)
	cmd.Dir = spec.Dir
	if len(spec.Env) > 0 {
		cmd.Env = os.Environ()
		for key, value := range spec.Env {
			cmd.Env = append(cmd.Env, key+"="+value)
		}
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if r.Tee != nil {
		cmd.Stdout = io.MultiWriter(&stdout, r.Tee)
		cmd.Stderr = io.MultiWriter(&stderr, r.Tee)
	}

	setProcAttrs(cmd)
	cmd.WaitDelay = 10 * time.Second

	r.logger.Debug("running command", "cmd", spec.String(), "dir", spec.Dir)

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Spec: spec, Err: err}
	}

	waitErr := cmd.Wait()
	outcome := &RunOutcome{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
		TimedOut: errors.Is(ctx.Err(), context.DeadlineExceeded),
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) && !outcome.TimedOut {
			return outcome, fmt.Errorf("waiting for %s: %w", spec.Path, waitErr)
		}
	}

	r.logger.Debug("command finished",
		"cmd", spec.Path,
		"exit_code", outcome.ExitCode,
		"duration", outcome.Duration,
		"timed_out", outcome.TimedOut,
	)
	return outcome, nil
}
