package nativebuild

import "path/filepath"

// generatorMode describes how a backend picks its CMake generator.
type generatorMode int

const (
	// generatorNone: no CMake involved (ndk-build).
	generatorNone generatorMode = iota

	// generatorFixed: the backend mandates one generator (Visual Studio,
	// MinGW Makefiles).
	generatorFixed

	// generatorPreferred: single-config backends walk the configured
	// preference order (Ninja first by default, Makefiles fallback).
	generatorPreferred
)

// backendSpec is one row of the backend table: everything that
// distinguishes a BuilderType from the others, kept as data so the closed
// set stays machine-checkable in one place.
type backendSpec struct {
	displayName string

	// envVar is the environment variable naming the default toolchain
	// root when no prefix is given (ANDROID_NDK, MinGW, LLVM, ...).
	envVar string

	// ndkBuild marks the bare ndk-build backend.
	ndkBuild bool

	// compilerC/compilerCXX are probed below <root>/bin (or the prefix)
	// and pinned via CMAKE_C_COMPILER/CMAKE_CXX_COMPILER.
	compilerC   string
	compilerCXX string

	// makeProgram is probed below <root>/bin and pinned via
	// CMAKE_MAKE_PROGRAM (MinGW).
	makeProgram string

	// toolchainFile is the path below the SDK root of the CMake
	// toolchain file for cross builds.
	toolchainFile string

	// crossTarget selects the Android/OHOS define block from Settings.
	crossTarget string

	genMode generatorMode

	// multiConfig marks generators that need --config at build time
	// (Visual Studio).
	multiConfig bool
}

const (
	crossTargetAndroid = "android"
	crossTargetOHOS    = "ohos"
)

// backends is the closed backend table. BuilderType validity, resolution
// strategy and command planning are all driven from here.
var backends = map[BuilderType]backendSpec{
	NDK: {
		displayName: "NDK",
		envVar:      "ANDROID_NDK",
		ndkBuild:    true,
		genMode:     generatorNone,
	},
	CMakeWindowsMSVC: {
		displayName: "CMake (Visual Studio MSVC)",
		genMode:     generatorFixed,
		multiConfig: true,
	},
	CMakeWindowsMinGW: {
		displayName: "CMake (MinGW)",
		envVar:      "MinGW",
		makeProgram: "mingw32-make.exe",
		genMode:     generatorFixed,
	},
	CMakeClang: {
		displayName: "CMake (Clang)",
		envVar:      "LLVM",
		compilerC:   "clang",
		compilerCXX: "clang++",
		genMode:     generatorPreferred,
	},
	CMakeGCC: {
		displayName: "CMake (GCC)",
		envVar:      "GCC",
		compilerC:   "gcc",
		compilerCXX: "g++",
		genMode:     generatorPreferred,
	},
	CMakeAndroid: {
		displayName:   "CMake (Android)",
		envVar:        "ANDROID_NDK",
		toolchainFile: filepath.Join("build", "cmake", "android.toolchain.cmake"),
		crossTarget:   crossTargetAndroid,
		genMode:       generatorPreferred,
	},
	CMakeOHOS: {
		displayName:   "CMake (OpenHarmony)",
		envVar:        "OHOS_SDK",
		toolchainFile: filepath.Join("build", "cmake", "ohos.toolchain.cmake"),
		crossTarget:   crossTargetOHOS,
		genMode:       generatorPreferred,
	},
}

// DisplayName returns a human-readable backend name for logs and the CLI.
func (t BuilderType) DisplayName() string {
	if spec, ok := backends[t]; ok {
		return spec.displayName
	}
	return string(t)
}
