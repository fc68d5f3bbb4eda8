package nativebuild

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnsupportedBuilderType is returned by the Factory when asked for a
// builder type outside the closed set. This is the one condition treated as
// a programmer error and surfaced at construction time instead of being
// deferred into a BuildResult.
var ErrUnsupportedBuilderType = errors.New("unsupported builder type")

// ResolutionErrorKind classifies why toolchain resolution failed.
type ResolutionErrorKind int

const (
	// ToolchainNotFound: no candidate location yielded a usable toolchain.
	ToolchainNotFound ResolutionErrorKind = iota

	// VersionTooOld: a toolchain was found but below the required minimum.
	VersionTooOld

	// PrefixInvalid: an explicit toolchain prefix was given but does not
	// contain the expected toolchain layout.
	PrefixInvalid
)

func (k ResolutionErrorKind) String() string {
	switch k {
	case ToolchainNotFound:
		return "toolchain not found"
	case VersionTooOld:
		return "version too old"
	case PrefixInvalid:
		return "prefix invalid"
	default:
		return "unknown"
	}
}

// ResolutionError reports that a toolchain could not be resolved for a
// backend. It is recoverable: the builder turns it into a failed
// BuildResult without spawning any process.
type ResolutionError struct {
	Kind   ResolutionErrorKind
	Type   BuilderType
	Tool   string // the tool or file that was searched for
	Path   string // the location that was probed, if any
	Detail string // extra context (env var name, found version, ...)
}

func (e *ResolutionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Type, e.Kind)
	if e.Tool != "" {
		fmt.Fprintf(&b, ": %s", e.Tool)
	}
	if e.Path != "" {
		fmt.Fprintf(&b, " at %s", e.Path)
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, " (%s)", e.Detail)
	}
	return b.String()
}

// SpawnError reports that a command could not be launched at all: the
// executable vanished between resolution and exec, or permission was
// denied. A non-zero exit code is never a SpawnError.
type SpawnError struct {
	Spec *CommandSpec
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to spawn %s: %v", e.Spec.Path, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// TimeoutError reports that a command exceeded its per-command timeout and
// was terminated together with its descendants.
type TimeoutError struct {
	Spec    *CommandSpec
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("command timed out after %s: %s", e.Timeout, e.Spec)
}

// CommandError reports a command that ran to completion but exited with a
// code outside its expected set. The captured stderr is included so the
// failure can be diagnosed without re-running.
type CommandError struct {
	Spec     *CommandSpec
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed with exit code %d: %s", e.ExitCode, e.Spec)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += "\n" + stderr
	}
	return msg
}
