//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Build compiles the native-build CLI.
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/native-build", "./cmd/native-build")
}

// Test runs the full test suite with race detection.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// CI runs everything the pipeline runs.
func CI() {
	mg.SerialDeps(Vet, Test, Build)
}

// Clean removes build outputs.
func Clean() error {
	return sh.Rm("bin")
}
