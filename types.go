package nativebuild

import (
	"fmt"
	"strings"
	"time"
)

// BuilderType identifies a (build-system, compiler-family, platform) triple.
//
// The set is closed: every value maps to an entry in the backend table, and
// the Factory rejects anything else at construction time.
type BuilderType string

// Supported builder types.
const (
	// NDK drives ndk-build directly against an Android.mk project.
	NDK BuilderType = "ndk"

	// CMakeWindowsMSVC configures CMake with a Visual Studio generator.
	CMakeWindowsMSVC BuilderType = "cmake-windows-msvc"

	// CMakeWindowsMinGW configures CMake with MinGW Makefiles.
	CMakeWindowsMinGW BuilderType = "cmake-windows-mingw"

	// CMakeClang configures CMake with an explicit clang/clang++ pair.
	CMakeClang BuilderType = "cmake-clang"

	// CMakeGCC configures CMake with an explicit gcc/g++ pair.
	CMakeGCC BuilderType = "cmake-gcc"

	// CMakeAndroid cross-compiles via the NDK's CMake toolchain file.
	CMakeAndroid BuilderType = "cmake-android"

	// CMakeOHOS cross-compiles via the OpenHarmony CMake toolchain file.
	CMakeOHOS BuilderType = "cmake-ohos"
)

// AllBuilderTypes returns the closed set of supported builder types in
// declaration order.
func AllBuilderTypes() []BuilderType {
	return []BuilderType{
		NDK,
		CMakeWindowsMSVC,
		CMakeWindowsMinGW,
		CMakeClang,
		CMakeGCC,
		CMakeAndroid,
		CMakeOHOS,
	}
}

// ParseBuilderType converts a string (as accepted on the command line) into
// a BuilderType. Matching is case-insensitive.
func ParseBuilderType(s string) (BuilderType, error) {
	normalized := BuilderType(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range AllBuilderTypes() {
		if t == normalized {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedBuilderType, s)
}

// Valid reports whether t is one of the supported builder types.
func (t BuilderType) Valid() bool {
	_, ok := backends[t]
	return ok
}

// String returns the command-line spelling of the builder type.
func (t BuilderType) String() string { return string(t) }

// BuildConfig describes one build target. It is created by the Factory and
// never mutated afterwards; a Builder owns exactly one BuildConfig for its
// whole lifetime.
//
// BuildDir must be creatable/writable; that is verified when Build runs,
// not at construction. ToolchainPrefix, when set, must point at an existing
// toolchain root; the resolver reports PrefixInvalid otherwise.
type BuildConfig struct {
	// Type selects the backend.
	Type BuilderType

	// BuildDir receives all generated build files and artifacts.
	BuildDir string

	// SourceDir is the project root handed to the build system.
	// Defaults to "." when empty.
	SourceDir string

	// ToolchainPrefix optionally overrides the default toolchain search
	// locations (an NDK root, an LLVM install dir, ...).
	ToolchainPrefix string

	// ExtraArgs are appended verbatim to the configure (CMake) or build
	// (ndk-build) command line.
	ExtraArgs []string

	// Env holds extra environment variables set for every spawned command.
	Env map[string]string

	// Parallel is the number of parallel build jobs (0 = build-system default).
	Parallel int

	// CommandTimeout bounds each individual command. Zero means no timeout.
	CommandTimeout time.Duration
}

func (c *BuildConfig) sourceDir() string {
	if c.SourceDir == "" {
		return "."
	}
	return c.SourceDir
}

// ResolvedToolchain holds the verified executable and SDK paths for one
// backend. It is recomputed on every build/clean call and never cached, so
// PATH edits or SDK moves between calls are picked up.
//
// Every path in a ResolvedToolchain has been probed: files exist and
// executables carry an execute bit before the resolver returns it.
type ResolvedToolchain struct {
	// BuildSystem is the absolute path of the build driver
	// (cmake or ndk-build).
	BuildSystem string

	// CompilerC and CompilerCXX are set for backends that pin compilers
	// explicitly (clang/gcc families).
	CompilerC   string
	CompilerCXX string

	// MakeProgram is the make binary passed to CMake for MinGW builds.
	MakeProgram string

	// ToolchainFile is the CMake toolchain file for cross builds
	// (Android/OHOS).
	ToolchainFile string

	// SDKRoot is the SDK/toolchain root the paths above were found under.
	SDKRoot string

	// Generator is the CMake generator to configure with. Empty for NDK.
	Generator string
}

// CommandSpec is one concrete command to execute: the executable, its
// arguments in order, the working directory, and the exit codes considered
// successful. Value semantics; immutable once planned.
type CommandSpec struct {
	Path              string
	Args              []string
	Dir               string
	Env               map[string]string
	ExpectedExitCodes []int
}

// Satisfies reports whether code is an expected exit code for this command.
// An empty ExpectedExitCodes set means only zero is accepted.
func (s *CommandSpec) Satisfies(code int) bool {
	if len(s.ExpectedExitCodes) == 0 {
		return code == 0
	}
	for _, want := range s.ExpectedExitCodes {
		if code == want {
			return true
		}
	}
	return false
}

// String renders the command roughly as it would be typed in a shell.
// Used in logs and error messages only.
func (s *CommandSpec) String() string {
	if len(s.Args) == 0 {
		return s.Path
	}
	return s.Path + " " + strings.Join(s.Args, " ")
}

// RunOutcome is the classified result of executing one command: its exit
// code plus the fully captured output streams. A non-zero exit code is a
// normal outcome, not an error; callers interpret it against the command's
// expected exit codes.
type RunOutcome struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
	TimedOut bool
}

// BuildResult is returned by Builder.Build and Builder.Clean.
//
// Expected failures (missing toolchain, non-zero exit, timeout) are carried
// inside the result rather than surfaced as panics; the accompanying error
// return mirrors Err for callers that prefer the two-value form.
type BuildResult struct {
	// Succeeded is true when every planned command exited with an
	// expected code.
	Succeeded bool

	// ExitCode of the failed command, or 0.
	ExitCode int

	// Stdout and Stderr aggregate the captured output of every command
	// that ran, in order.
	Stdout string
	Stderr string

	// FailedCommand is the first command whose exit code was not
	// expected, the command that failed to spawn, or the command that
	// timed out. Nil on success and on resolution failures (which issue
	// no commands at all).
	FailedCommand *CommandSpec

	// Err classifies the failure: *ResolutionError, *SpawnError,
	// *TimeoutError or *CommandError. Nil on success.
	Err error
}

func failedResult(err error) *BuildResult {
	return &BuildResult{Err: err}
}
