package nativebuild

import "strconv"

// Command planning is a pure transformation: (config, resolved toolchain)
// in, ordered CommandSpec values out. Nothing here touches the filesystem
// or the environment; generator and path decisions were already made by the
// resolver.

// planBuild returns the build command sequence for a backend.
//
// CMake family: configure then build, in that order. The build step must
// never run against an unconfigured directory, so the caller executes the
// sequence strictly sequentially with short-circuit on failure.
//
// NDK: a single ndk-build invocation with both output trees redirected into
// the build directory.
func planBuild(cfg *BuildConfig, tc *ResolvedToolchain, settings *Settings) []CommandSpec {
	spec := backends[cfg.Type]

	if spec.ndkBuild {
		args := []string{
			"V=1",
			"NDK_OUT=" + cfg.BuildDir,
			"NDK_LIBS_OUT=" + cfg.BuildDir,
		}
		args = append(args, cfg.ExtraArgs...)
		return []CommandSpec{{
			Path: tc.BuildSystem,
			Args: args,
			Dir:  cfg.sourceDir(),
			Env:  cfg.Env,
		}}
	}

	configure := CommandSpec{
		Path: tc.BuildSystem,
		Args: configureArgs(cfg, tc, spec, settings),
		Dir:  cfg.sourceDir(),
		Env:  cfg.Env,
	}

	buildArgs := []string{"--build", cfg.BuildDir}
	if spec.multiConfig && settings.BuildType != "" {
		buildArgs = append(buildArgs, "--config", settings.BuildType)
	}
	if cfg.Parallel > 0 {
		buildArgs = append(buildArgs, "--parallel", strconv.Itoa(cfg.Parallel))
	}
	build := CommandSpec{
		Path: tc.BuildSystem,
		Args: buildArgs,
		Dir:  cfg.sourceDir(),
		Env:  cfg.Env,
	}

	return []CommandSpec{configure, build}
}

func configureArgs(cfg *BuildConfig, tc *ResolvedToolchain, spec backendSpec, settings *Settings) []string {
	args := []string{"-S", cfg.sourceDir(), "-B", cfg.BuildDir}
	if tc.Generator != "" {
		args = append(args, "-G", tc.Generator)
	}
	if !spec.multiConfig && settings.BuildType != "" {
		args = append(args, "-DCMAKE_BUILD_TYPE="+settings.BuildType)
	}
	if tc.MakeProgram != "" {
		args = append(args, "-DCMAKE_MAKE_PROGRAM="+tc.MakeProgram)
	}
	if tc.CompilerC != "" {
		args = append(args,
			"-DCMAKE_C_COMPILER:FILEPATH="+tc.CompilerC,
			"-DCMAKE_CXX_COMPILER:FILEPATH="+tc.CompilerCXX,
		)
	}
	if tc.ToolchainFile != "" {
		cross := settings.cross(spec.crossTarget)
		args = append(args,
			"-DCMAKE_TOOLCHAIN_FILE="+tc.ToolchainFile,
			"-DANDROID_ABI="+cross.ABI,
			"-DANDROID_STL="+cross.STL,
			"-DANDROID_PLATFORM="+cross.Platform,
		)
	}
	return append(args, cfg.ExtraArgs...)
}

// planClean returns the clean command sequence. CMake owns a clean target,
// so cleaning delegates to it and preserves any out-of-tree state the build
// system tracks. ndk-build has no clean target here; its artifacts are
// removed directly by the Builder, so no commands are planned.
func planClean(cfg *BuildConfig, tc *ResolvedToolchain) []CommandSpec {
	if backends[cfg.Type].ndkBuild {
		return nil
	}
	return []CommandSpec{{
		Path: tc.BuildSystem,
		Args: []string{"--build", cfg.BuildDir, "--target", "clean"},
		Dir:  cfg.sourceDir(),
		Env:  cfg.Env,
	}}
}
