// Package nativebuild provides a unified interface for building and
// cleaning C/C++ projects across multiple native toolchains.
//
// It orchestrates external build systems — it does not compile code itself,
// and it does not download toolchains it cannot find.
//
// # Supported Backends
//
//	NDK                 - ndk-build against an Android.mk project
//	CMakeWindowsMSVC    - CMake with a Visual Studio generator
//	CMakeWindowsMinGW   - CMake with MinGW Makefiles
//	CMakeClang          - CMake with a pinned clang/clang++ pair
//	CMakeGCC            - CMake with a pinned gcc/g++ pair
//	CMakeAndroid        - CMake with the NDK's android.toolchain.cmake
//	CMakeOHOS           - CMake with the OpenHarmony ohos.toolchain.cmake
//
// # Basic Usage
//
// Create a builder through the factory and run it:
//
//	factory := nativebuild.NewFactory()
//
//	builder, err := factory.Create(nativebuild.CMakeGCC, "out", "")
//	if err != nil {
//	    // out-of-set builder type: programmer error
//	}
//
//	result, err := builder.Build(ctx)
//	if !result.Succeeded {
//	    // result.Err classifies the failure; result.FailedCommand,
//	    // result.ExitCode and result.Stderr say which command failed
//	    // and why, without re-running with extra verbosity.
//	}
//
// # Architecture
//
// Each call runs resolve, plan, run in sequence:
//
//	Factory
//	└── Builder (one per build directory)
//	    ├── ToolchainResolver - probes prefix, SDK env vars, PATH
//	    ├── command planning  - backend table -> []CommandSpec
//	    └── CommandRunner     - spawns, captures output, enforces timeout
//
// Toolchain resolution happens on every Build/Clean call, never at
// construction, so environment changes between calls are honored.
//
// Toolchain roots come from an explicit prefix or from the conventional
// environment variables: ANDROID_NDK, MinGW, LLVM, GCC, OHOS_SDK.
//
// # Failure Semantics
//
// Expected failures — missing toolchains, non-zero exits, timeouts — are
// returned inside the BuildResult. Only an out-of-set BuilderType at
// factory time is treated as a programmer error.
//
// # Concurrency
//
// Commands within one Build/Clean run strictly sequentially. Distinct
// Builders over distinct build directories are independent and may run
// concurrently; never share a build directory between concurrent calls.
package nativebuild
