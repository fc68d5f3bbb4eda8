package nativebuild

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"cosmossdk.io/log"
)

// Builder is the public facade over toolchain resolution, command planning
// and process execution for one build target.
//
// A Builder owns its BuildConfig for its whole lifetime. Toolchain
// resolution is deferred to each Build/Clean call on purpose: PATH edits or
// SDK installs between construction and use are picked up.
//
// A single Build or Clean call runs its planned commands strictly
// sequentially; configure-then-build ordering is a correctness requirement.
// Distinct Builder instances with distinct build directories may run
// concurrently. Callers must not invoke Build/Clean concurrently on the
// same build directory.
type Builder interface {
	// Type returns the backend this builder drives.
	Type() BuilderType

	// Build resolves the toolchain, plans the command sequence and runs
	// it, short-circuiting at the first command whose exit code is not
	// expected. The result carries the captured output and, on failure,
	// the failed command and a classified error.
	//
	// The returned error mirrors result.Err; the result is never nil.
	Build(ctx context.Context) (*BuildResult, error)

	// Clean removes generated build artifacts. It is idempotent, safe on
	// an already-clean or never-configured directory (a no-op success),
	// and independently callable regardless of prior build failures.
	Clean(ctx context.Context) (*BuildResult, error)
}

// nativeBuilder is the one concrete Builder. Backend differences live in
// the backend table and in the ResolvedToolchain, not in per-backend
// subtypes.
type nativeBuilder struct {
	config   BuildConfig
	resolver ToolchainResolver
	runner   CommandRunner
	logger   log.Logger
	settings *Settings
}

func (b *nativeBuilder) Type() BuilderType { return b.config.Type }

// ndkOutputDirs are the subtrees ndk-build writes below the build
// directory (NDK_OUT and NDK_LIBS_OUT). Clean removes only these, never
// the source tree.
var ndkOutputDirs = []string{"local", "obj", "libs"}

func (b *nativeBuilder) Build(ctx context.Context) (*BuildResult, error) {
	b.logger.Info("build started",
		"type", b.config.Type.String(),
		"build_dir", b.config.BuildDir,
	)

	if err := os.MkdirAll(b.config.BuildDir, 0o755); err != nil {
		result := failedResult(fmt.Errorf("create build directory: %w", err))
		return result, result.Err
	}

	toolchain, err := b.resolver.Resolve(ctx, b.config.Type, b.config.ToolchainPrefix)
	if err != nil {
		b.logger.Error("toolchain resolution failed", "err", err)
		return failedResult(err), err
	}

	commands := planBuild(&b.config, toolchain, b.settings)
	result := b.runAll(ctx, commands)
	if result.Succeeded {
		b.logger.Info("build finished", "type", b.config.Type.String())
	}
	return result, result.Err
}

func (b *nativeBuilder) Clean(ctx context.Context) (*BuildResult, error) {
	b.logger.Info("clean started",
		"type", b.config.Type.String(),
		"build_dir", b.config.BuildDir,
	)

	if backends[b.config.Type].ndkBuild {
		return b.cleanNDKOutputs()
	}

	// An unconfigured directory has nothing the build system could
	// clean; succeed without resolving any toolchain.
	cache := filepath.Join(b.config.BuildDir, "CMakeCache.txt")
	if !fileExists(cache) {
		return &BuildResult{Succeeded: true}, nil
	}

	toolchain, err := b.resolver.Resolve(ctx, b.config.Type, b.config.ToolchainPrefix)
	if err != nil {
		b.logger.Error("toolchain resolution failed", "err", err)
		return failedResult(err), err
	}

	result := b.runAll(ctx, planClean(&b.config, toolchain))
	return result, result.Err
}

// cleanNDKOutputs deletes the known ndk-build output subtrees below the
// build directory. Missing directories are not an error.
func (b *nativeBuilder) cleanNDKOutputs() (*BuildResult, error) {
	for _, sub := range ndkOutputDirs {
		dir := filepath.Join(b.config.BuildDir, sub)
		if err := os.RemoveAll(dir); err != nil {
			result := failedResult(fmt.Errorf("remove %s: %w", dir, err))
			return result, result.Err
		}
	}
	return &BuildResult{Succeeded: true}, nil
}

// runAll executes the planned commands in sequence, stopping at the first
// command whose outcome is not an expected exit code. All commands must
// succeed for overall success.
func (b *nativeBuilder) runAll(ctx context.Context, commands []CommandSpec) *BuildResult {
	result := &BuildResult{}

	for i := range commands {
		spec := &commands[i]

		runCtx := ctx
		var cancel context.CancelFunc
		if b.config.CommandTimeout > 0 {
			runCtx, cancel = context.WithTimeout(ctx, b.config.CommandTimeout)
		}
		outcome, err := b.runner.Run(runCtx, spec)
		if cancel != nil {
			cancel()
		}

		if err != nil {
			result.FailedCommand = spec
			result.Err = err
			return result
		}

		result.Stdout += outcome.Stdout
		result.Stderr += outcome.Stderr

		if outcome.TimedOut {
			result.FailedCommand = spec
			result.ExitCode = outcome.ExitCode
			result.Err = &TimeoutError{Spec: spec, Timeout: b.config.CommandTimeout}
			return result
		}
		if !spec.Satisfies(outcome.ExitCode) {
			result.FailedCommand = spec
			result.ExitCode = outcome.ExitCode
			result.Err = &CommandError{
				Spec:     spec,
				ExitCode: outcome.ExitCode,
				Stderr:   outcome.Stderr,
			}
			b.logger.Error("command failed",
				"cmd", spec.String(),
				"exit_code", outcome.ExitCode,
			)
			return result
		}
	}

	result.Succeeded = true
	return result
}
