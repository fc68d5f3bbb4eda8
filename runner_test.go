package nativebuild

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests drive /bin/sh")
	}
}

func TestExecRunnerCapturesOutput(t *testing.T) {
	skipWithoutShell(t)
	runner := NewExecRunner(nil)

	outcome, err := runner.Run(context.Background(), &CommandSpec{
		Path: "/bin/sh",
		Args: []string{"-c", "echo to-stdout; echo to-stderr 1>&2"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, outcome.ExitCode)
	assert.Equal(t, "to-stdout\n", outcome.Stdout)
	assert.Equal(t, "to-stderr\n", outcome.Stderr)
	assert.False(t, outcome.TimedOut)
}

func TestExecRunnerNonZeroExitIsNotAnError(t *testing.T) {
	skipWithoutShell(t)
	runner := NewExecRunner(nil)

	outcome, err := runner.Run(context.Background(), &CommandSpec{
		Path: "/bin/sh",
		Args: []string{"-c", "exit 3"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, outcome.ExitCode)
}

func TestExecRunnerSpawnError(t *testing.T) {
	runner := NewExecRunner(nil)

	_, err := runner.Run(context.Background(), &CommandSpec{
		Path: filepath.Join(t.TempDir(), "does-not-exist"),
	})
	var spawnErr *SpawnError
	require.True(t, errors.As(err, &spawnErr))
}

func TestExecRunnerTimeoutKillsChild(t *testing.T) {
	skipWithoutShell(t)
	runner := NewExecRunner(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	outcome, err := runner.Run(ctx, &CommandSpec{
		Path: "/bin/sh",
		Args: []string{"-c", "sleep 30"},
	})
	require.NoError(t, err)
	assert.True(t, outcome.TimedOut)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestExecRunnerWorkingDirAndEnv(t *testing.T) {
	skipWithoutShell(t)
	runner := NewExecRunner(nil)
	dir := t.TempDir()

	outcome, err := runner.Run(context.Background(), &CommandSpec{
		Path: "/bin/sh",
		Args: []string{"-c", `printf "%s" "$NATIVE_BUILD_TEST"`},
		Dir:  dir,
		Env:  map[string]string{"NATIVE_BUILD_TEST": "hello"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", outcome.Stdout)
}
