package nativebuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanBuildCMakeConfigureBeforeBuild(t *testing.T) {
	cfg := &BuildConfig{Type: CMakeGCC, BuildDir: "out"}
	tc := &ResolvedToolchain{
		BuildSystem: "/usr/bin/cmake",
		CompilerC:   "/opt/gcc/bin/gcc",
		CompilerCXX: "/opt/gcc/bin/g++",
		Generator:   "Ninja",
	}

	commands := planBuild(cfg, tc, DefaultSettings())
	require.Len(t, commands, 2)

	configure, build := commands[0], commands[1]
	assert.Equal(t, "/usr/bin/cmake", configure.Path)
	assert.Equal(t, []string{
		"-S", ".",
		"-B", "out",
		"-G", "Ninja",
		"-DCMAKE_BUILD_TYPE=Release",
		"-DCMAKE_C_COMPILER:FILEPATH=/opt/gcc/bin/gcc",
		"-DCMAKE_CXX_COMPILER:FILEPATH=/opt/gcc/bin/g++",
	}, configure.Args)

	assert.Equal(t, "/usr/bin/cmake", build.Path)
	assert.Equal(t, []string{"--build", "out"}, build.Args)
}

func TestPlanBuildMSVCMultiConfig(t *testing.T) {
	cfg := &BuildConfig{Type: CMakeWindowsMSVC, BuildDir: "out"}
	tc := &ResolvedToolchain{
		BuildSystem: `C:\cmake\cmake.exe`,
		Generator:   "Visual Studio 17 2022",
	}

	commands := planBuild(cfg, tc, DefaultSettings())
	require.Len(t, commands, 2)

	// Multi-config generators take the build type at build time, not at
	// configure time.
	assert.NotContains(t, commands[0].Args, "-DCMAKE_BUILD_TYPE=Release")
	assert.Contains(t, commands[0].Args, "Visual Studio 17 2022")
	assert.Equal(t, []string{"--build", "out", "--config", "Release"}, commands[1].Args)
}

func TestPlanBuildMinGWPinsMakeProgram(t *testing.T) {
	cfg := &BuildConfig{Type: CMakeWindowsMinGW, BuildDir: "out"}
	tc := &ResolvedToolchain{
		BuildSystem: "cmake",
		MakeProgram: `C:\MinGW\bin\mingw32-make.exe`,
		Generator:   "MinGW Makefiles",
	}

	commands := planBuild(cfg, tc, DefaultSettings())
	require.Len(t, commands, 2)
	assert.Contains(t, commands[0].Args, "-DCMAKE_MAKE_PROGRAM="+tc.MakeProgram)
	assert.Contains(t, commands[0].Args, "MinGW Makefiles")
}

func TestPlanBuildAndroidToolchainDefines(t *testing.T) {
	cfg := &BuildConfig{Type: CMakeAndroid, BuildDir: "out"}
	tc := &ResolvedToolchain{
		BuildSystem:   "cmake",
		ToolchainFile: "/opt/ndk/build/cmake/android.toolchain.cmake",
		Generator:     "Ninja",
	}

	commands := planBuild(cfg, tc, DefaultSettings())
	require.Len(t, commands, 2)
	args := commands[0].Args
	assert.Contains(t, args, "-DCMAKE_TOOLCHAIN_FILE="+tc.ToolchainFile)
	assert.Contains(t, args, "-DANDROID_ABI=arm64-v8a")
	assert.Contains(t, args, "-DANDROID_STL=c++_shared")
	assert.Contains(t, args, "-DANDROID_PLATFORM=android-31")
}

func TestPlanBuildOHOSPlatform(t *testing.T) {
	cfg := &BuildConfig{Type: CMakeOHOS, BuildDir: "out"}
	tc := &ResolvedToolchain{
		BuildSystem:   "cmake",
		ToolchainFile: "/opt/ohos/build/cmake/ohos.toolchain.cmake",
		Generator:     "Ninja",
	}

	commands := planBuild(cfg, tc, DefaultSettings())
	require.Len(t, commands, 2)
	assert.Contains(t, commands[0].Args, "-DANDROID_PLATFORM=OHOS")
}

func TestPlanBuildNDKSingleCommand(t *testing.T) {
	cfg := &BuildConfig{
		Type:      NDK,
		BuildDir:  "out",
		SourceDir: "jni-project",
		ExtraArgs: []string{"APP_ABI=arm64-v8a"},
	}
	tc := &ResolvedToolchain{BuildSystem: "/opt/ndk/ndk-build"}

	commands := planBuild(cfg, tc, DefaultSettings())
	require.Len(t, commands, 1)
	assert.Equal(t, "/opt/ndk/ndk-build", commands[0].Path)
	assert.Equal(t, []string{
		"V=1",
		"NDK_OUT=out",
		"NDK_LIBS_OUT=out",
		"APP_ABI=arm64-v8a",
	}, commands[0].Args)
	assert.Equal(t, "jni-project", commands[0].Dir)
}

func TestPlanBuildParallelAndExtraArgs(t *testing.T) {
	cfg := &BuildConfig{
		Type:      CMakeGCC,
		BuildDir:  "out",
		Parallel:  8,
		ExtraArgs: []string{"-DFOO=ON"},
	}
	commands := planBuild(cfg, cmakeToolchain(), DefaultSettings())
	require.Len(t, commands, 2)
	assert.Equal(t, "-DFOO=ON", commands[0].Args[len(commands[0].Args)-1])
	assert.Contains(t, commands[1].Args, "--parallel")
	assert.Contains(t, commands[1].Args, "8")
}

func TestPlanClean(t *testing.T) {
	cfg := &BuildConfig{Type: CMakeGCC, BuildDir: "out"}
	commands := planClean(cfg, cmakeToolchain())
	require.Len(t, commands, 1)
	assert.Equal(t, []string{"--build", "out", "--target", "clean"}, commands[0].Args)

	ndkCfg := &BuildConfig{Type: NDK, BuildDir: "out"}
	assert.Empty(t, planClean(ndkCfg, &ResolvedToolchain{BuildSystem: "ndk-build"}))
}
