package nativebuild

import (
	"fmt"

	"cosmossdk.io/log"
)

// Factory creates Builders for the closed set of builder types.
//
// Construction is pure: no toolchain resolution or other I/O happens until
// the first Build/Clean call on the created Builder. The only
// construction-time failure is an out-of-set BuilderType, which is a
// programmer error and surfaced immediately as ErrUnsupportedBuilderType.
//
// The zero-option factory resolves toolchains from the real environment and
// executes commands through os/exec. Tests swap in recording runners or
// canned resolvers via the options.
type Factory struct {
	settings *Settings
	logger   log.Logger
	runner   CommandRunner
	resolver ToolchainResolver
}

// FactoryOption customizes a Factory.
type FactoryOption func(*Factory)

// WithLogger sets the logger handed to every created Builder and to the
// default runner.
func WithLogger(logger log.Logger) FactoryOption {
	return func(f *Factory) { f.logger = logger }
}

// WithSettings overrides the backend parameters (generator preference,
// minimum versions, cross-compilation defaults).
func WithSettings(settings *Settings) FactoryOption {
	return func(f *Factory) { f.settings = settings }
}

// WithRunner replaces the process runner.
func WithRunner(runner CommandRunner) FactoryOption {
	return func(f *Factory) { f.runner = runner }
}

// WithResolver replaces the toolchain resolver.
func WithResolver(resolver ToolchainResolver) FactoryOption {
	return func(f *Factory) { f.resolver = resolver }
}

// NewFactory returns a Factory with the given options applied.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		settings: DefaultSettings(),
		logger:   log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.runner == nil {
		f.runner = NewExecRunner(f.logger)
	}
	if f.resolver == nil {
		f.resolver = newDefaultResolver(f.settings, f.runner)
	}
	return f
}

// Create returns a Builder for the given type, build directory and optional
// toolchain prefix (empty string for the default search locations).
func (f *Factory) Create(typ BuilderType, buildDir, toolchainPrefix string) (Builder, error) {
	return f.CreateFromConfig(BuildConfig{
		Type:            typ,
		BuildDir:        buildDir,
		ToolchainPrefix: toolchainPrefix,
	})
}

// CreateFromConfig returns a Builder owning the given configuration. The
// config is copied; it is never mutated after this call.
func (f *Factory) CreateFromConfig(cfg BuildConfig) (Builder, error) {
	if !cfg.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBuilderType, cfg.Type)
	}
	if cfg.BuildDir == "" {
		return nil, fmt.Errorf("build directory is required")
	}
	return &nativeBuilder{
		config:   cfg,
		resolver: f.resolver,
		runner:   f.runner,
		logger:   f.logger,
		settings: f.settings,
	}, nil
}

// New is a convenience wrapper for one-off use:
// a default Factory plus Create.
func New(typ BuilderType, buildDir, toolchainPrefix string) (Builder, error) {
	return NewFactory().Create(typ, buildDir, toolchainPrefix)
}
