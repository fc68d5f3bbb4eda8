//go:build windows

package nativebuild

import "os/exec"

// setProcAttrs is a no-op on Windows; exec.CommandContext's default Cancel
// terminates the child process.
func setProcAttrs(cmd *exec.Cmd) {}
