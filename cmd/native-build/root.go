package main

import (
	"os"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	nativebuild "github.com/kinchow/native-build-go"
)

// rootOpts holds the flags shared by every subcommand.
type rootOpts struct {
	verbose      bool
	settingsPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:   "native-build",
		Short: "Build and clean C/C++ projects across native toolchains",
		Long: `native-build wraps CMake (MSVC, MinGW, Clang, GCC, Android, OpenHarmony)
and ndk-build behind one interface: pick a builder type, point it at a build
directory, and it resolves the toolchain, configures and builds.

Toolchain roots are taken from --prefix or from the conventional environment
variables (ANDROID_NDK, MinGW, LLVM, GCC, OHOS_SDK), which may also be
provided via a .env file in the working directory.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.settingsPath, "settings", "", "Path to a TOML settings file")

	cmd.AddCommand(newBuildCmd(opts))
	cmd.AddCommand(newCleanCmd(opts))
	cmd.AddCommand(newListCmd())

	return cmd
}

// newFactory assembles a factory from the shared flags.
func (o *rootOpts) newFactory() (*nativebuild.Factory, error) {
	logger := log.NewNopLogger()
	if o.verbose {
		logger = log.NewLogger(os.Stderr)
	}

	factoryOpts := []nativebuild.FactoryOption{nativebuild.WithLogger(logger)}
	if o.settingsPath != "" {
		settings, err := nativebuild.LoadSettings(o.settingsPath)
		if err != nil {
			return nil, err
		}
		factoryOpts = append(factoryOpts, nativebuild.WithSettings(settings))
	}

	return nativebuild.NewFactory(factoryOpts...), nil
}
