package nativebuild

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingRunner records every CommandSpec it is asked to run and replays
// scripted outcomes in order. Once the script is exhausted it returns
// success with empty output.
type recordingRunner struct {
	calls   []CommandSpec
	results []scriptedResult
}

type scriptedResult struct {
	outcome *RunOutcome
	err     error
}

func (r *recordingRunner) Run(ctx context.Context, spec *CommandSpec) (*RunOutcome, error) {
	r.calls = append(r.calls, *spec)
	if len(r.results) > 0 {
		next := r.results[0]
		r.results = r.results[1:]
		if next.outcome == nil && next.err == nil {
			return &RunOutcome{}, nil
		}
		return next.outcome, next.err
	}
	return &RunOutcome{}, nil
}

// cannedResolver returns a fixed toolchain or error without touching the
// environment.
type cannedResolver struct {
	toolchain *ResolvedToolchain
	err       error
}

func (r *cannedResolver) Resolve(ctx context.Context, typ BuilderType, prefix string) (*ResolvedToolchain, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.toolchain, nil
}

// writeFakeExe drops an executable shell stub into dir and returns its path.
func writeFakeExe(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755))
	return path
}

// hideToolchains blanks PATH and every toolchain root variable so that no
// backend can resolve anything.
func hideToolchains(t *testing.T) {
	t.Helper()
	t.Setenv("PATH", "")
	for _, envVar := range []string{"ANDROID_NDK", "MinGW", "LLVM", "GCC", "OHOS_SDK"} {
		t.Setenv(envVar, "")
	}
}

// cmakeToolchain is a minimal resolved toolchain for CMake-family tests.
func cmakeToolchain() *ResolvedToolchain {
	return &ResolvedToolchain{
		BuildSystem: "/usr/bin/cmake",
		Generator:   "Unix Makefiles",
	}
}
