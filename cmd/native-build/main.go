package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Toolchain roots (ANDROID_NDK, OHOS_SDK, ...) are often kept in a
	// local .env; absence is fine.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
