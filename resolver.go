package nativebuild

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"

	"golang.org/x/mod/semver"
)

// ToolchainResolver locates and validates the executables and SDK paths a
// backend needs. Resolution is read-only (filesystem probes plus a version
// query) and is repeated on every build/clean call so that PATH or SDK
// changes between invocations are honored.
type ToolchainResolver interface {
	Resolve(ctx context.Context, typ BuilderType, prefix string) (*ResolvedToolchain, error)
}

// defaultResolver probes, in order: the explicit prefix, the backend's
// well-known environment variable, then PATH. First match wins; there is no
// ranking beyond that declaration order.
type defaultResolver struct {
	settings *Settings
	runner   CommandRunner
	lookPath func(string) (string, error)
}

func newDefaultResolver(settings *Settings, runner CommandRunner) *defaultResolver {
	return &defaultResolver{
		settings: settings,
		runner:   runner,
		lookPath: exec.LookPath,
	}
}

var cmakeVersionRe = regexp.MustCompile(`cmake version (\d+(?:\.\d+)+)`)

func (r *defaultResolver) Resolve(ctx context.Context, typ BuilderType, prefix string) (*ResolvedToolchain, error) {
	spec, ok := backends[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBuilderType, typ)
	}

	if spec.ndkBuild {
		return r.resolveNDK(typ, prefix)
	}
	return r.resolveCMake(ctx, typ, spec, prefix)
}

func (r *defaultResolver) resolveNDK(typ BuilderType, prefix string) (*ResolvedToolchain, error) {
	spec := backends[typ]
	tool := withExecSuffix("ndk-build", ".cmd")

	path, err := r.findTool(typ, prefix, spec.envVar, "", tool)
	if err != nil {
		return nil, err
	}
	return &ResolvedToolchain{
		BuildSystem: path,
		SDKRoot:     filepath.Dir(path),
	}, nil
}

func (r *defaultResolver) resolveCMake(ctx context.Context, typ BuilderType, spec backendSpec, prefix string) (*ResolvedToolchain, error) {
	cmakePath, err := r.lookPath("cmake")
	if err != nil {
		return nil, &ResolutionError{
			Kind: ToolchainNotFound,
			Type: typ,
			Tool: "cmake",
		}
	}
	if err := r.checkCMakeVersion(ctx, typ, cmakePath); err != nil {
		return nil, err
	}

	tc := &ResolvedToolchain{BuildSystem: cmakePath}

	switch {
	case spec.makeProgram != "":
		makePath, err := r.findTool(typ, prefix, spec.envVar, "bin", spec.makeProgram)
		if err != nil {
			return nil, err
		}
		tc.MakeProgram = makePath
		tc.SDKRoot = filepath.Dir(makePath)

	case spec.compilerC != "":
		cc, err := r.findTool(typ, prefix, spec.envVar, "bin", withExecSuffix(spec.compilerC, ".exe"))
		if err != nil {
			return nil, err
		}
		cxx, err := r.findTool(typ, prefix, spec.envVar, "bin", withExecSuffix(spec.compilerCXX, ".exe"))
		if err != nil {
			return nil, err
		}
		tc.CompilerC = cc
		tc.CompilerCXX = cxx
		tc.SDKRoot = filepath.Dir(cc)

	case spec.toolchainFile != "":
		root, err := r.findSDKRoot(typ, prefix, spec.envVar)
		if err != nil {
			return nil, err
		}
		file := filepath.Join(root, spec.toolchainFile)
		if !fileExists(file) {
			kind := ToolchainNotFound
			if prefix != "" {
				kind = PrefixInvalid
			}
			return nil, &ResolutionError{
				Kind: kind,
				Type: typ,
				Tool: spec.toolchainFile,
				Path: file,
			}
		}
		tc.ToolchainFile = file
		tc.SDKRoot = root
	}

	tc.Generator = r.pickGenerator(typ, spec)
	return tc, nil
}

// checkCMakeVersion queries `cmake --version` and enforces the configured
// minimum. Unparsable output is not treated as a failure; only a version
// that parses and compares below the minimum is rejected.
func (r *defaultResolver) checkCMakeVersion(ctx context.Context, typ BuilderType, cmakePath string) error {
	if r.settings.MinCMakeVersion == "" {
		return nil
	}
	outcome, err := r.runner.Run(ctx, &CommandSpec{Path: cmakePath, Args: []string{"--version"}})
	if err != nil || outcome.ExitCode != 0 {
		return &ResolutionError{
			Kind:   ToolchainNotFound,
			Type:   typ,
			Tool:   "cmake",
			Path:   cmakePath,
			Detail: "cmake --version failed",
		}
	}
	m := cmakeVersionRe.FindStringSubmatch(outcome.Stdout)
	if m == nil {
		return nil
	}
	found, minimum := "v"+m[1], "v"+r.settings.MinCMakeVersion
	if semver.IsValid(found) && semver.IsValid(minimum) && semver.Compare(found, minimum) < 0 {
		return &ResolutionError{
			Kind:   VersionTooOld,
			Type:   typ,
			Tool:   "cmake",
			Path:   cmakePath,
			Detail: fmt.Sprintf("found %s, need at least %s", m[1], r.settings.MinCMakeVersion),
		}
	}
	return nil
}

// findTool probes the candidate locations for an executable: the explicit
// prefix, then <envVar root>/<subdir>, then PATH. The returned path has been
// verified to exist and be executable.
func (r *defaultResolver) findTool(typ BuilderType, prefix, envVar, subdir, tool string) (string, error) {
	if prefix != "" {
		path := filepath.Join(prefix, tool)
		if !isExecutable(path) {
			return "", &ResolutionError{
				Kind: PrefixInvalid,
				Type: typ,
				Tool: tool,
				Path: path,
			}
		}
		return path, nil
	}

	if envVar != "" {
		if root := os.Getenv(envVar); root != "" {
			path := filepath.Join(root, subdir, tool)
			if isExecutable(path) {
				return path, nil
			}
			return "", &ResolutionError{
				Kind:   ToolchainNotFound,
				Type:   typ,
				Tool:   tool,
				Path:   path,
				Detail: "under " + envVar,
			}
		}
	}

	if path, err := r.lookPath(tool); err == nil {
		return path, nil
	}

	detail := "not on PATH"
	if envVar != "" {
		detail = envVar + " not set and " + detail
	}
	return "", &ResolutionError{
		Kind:   ToolchainNotFound,
		Type:   typ,
		Tool:   tool,
		Detail: detail,
	}
}

// findSDKRoot resolves the SDK root directory for toolchain-file backends:
// the explicit prefix or the backend's environment variable.
func (r *defaultResolver) findSDKRoot(typ BuilderType, prefix, envVar string) (string, error) {
	if prefix != "" {
		if !dirExists(prefix) {
			return "", &ResolutionError{
				Kind: PrefixInvalid,
				Type: typ,
				Path: prefix,
			}
		}
		return prefix, nil
	}
	if root := os.Getenv(envVar); root != "" {
		if !dirExists(root) {
			return "", &ResolutionError{
				Kind:   ToolchainNotFound,
				Type:   typ,
				Path:   root,
				Detail: "under " + envVar,
			}
		}
		return root, nil
	}
	return "", &ResolutionError{
		Kind:   ToolchainNotFound,
		Type:   typ,
		Detail: envVar + " not set",
	}
}

// pickGenerator applies the configured preference order: a generator is
// chosen only when its driver executable resolves, except that the last
// entry is accepted unconditionally as the fallback.
func (r *defaultResolver) pickGenerator(typ BuilderType, spec backendSpec) string {
	switch spec.genMode {
	case generatorNone:
		return ""
	case generatorFixed:
		if spec.makeProgram != "" {
			return "MinGW Makefiles"
		}
		return r.settings.MSVCGenerator
	}

	prefs := r.settings.Generators
	for i, gen := range prefs {
		if i == len(prefs)-1 {
			return gen
		}
		if driver := generatorDriver(gen); driver != "" {
			if _, err := r.lookPath(driver); err == nil {
				return gen
			}
		}
	}
	return "Unix Makefiles"
}

// generatorDriver maps a CMake generator name to the executable that
// drives it, for availability probing.
func generatorDriver(generator string) string {
	switch generator {
	case "Ninja", "Ninja Multi-Config":
		return "ninja"
	case "Unix Makefiles":
		return "make"
	case "MinGW Makefiles":
		return "mingw32-make"
	default:
		return ""
	}
}

func withExecSuffix(name, suffix string) string {
	if runtime.GOOS == "windows" {
		return name + suffix
	}
	return name
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
