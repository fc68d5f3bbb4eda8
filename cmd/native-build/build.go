package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	nativebuild "github.com/kinchow/native-build-go"
)

type buildOpts struct {
	builderType string
	buildDir    string
	sourceDir   string
	prefix      string
	parallel    int
	timeout     time.Duration
	extraArgs   []string
}

func newBuildCmd(root *rootOpts) *cobra.Command {
	opts := &buildOpts{
		buildDir:  "build",
		sourceDir: ".",
	}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Configure and build the project for the selected backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := createBuilder(root, opts.builderType, opts)
			if err != nil {
				return err
			}
			result, _ := builder.Build(cmd.Context())
			return report("build", result)
		},
	}

	addTargetFlags(cmd, opts)
	cmd.Flags().StringArrayVarP(&opts.extraArgs, "arg", "a", nil, "Extra argument passed to the configure step (repeatable)")
	cmd.Flags().IntVarP(&opts.parallel, "parallel", "j", 0, "Parallel build jobs (0 = build-system default)")

	return cmd
}

func newCleanCmd(root *rootOpts) *cobra.Command {
	opts := &buildOpts{
		buildDir:  "build",
		sourceDir: ".",
	}

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove generated build artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := createBuilder(root, opts.builderType, opts)
			if err != nil {
				return err
			}
			result, _ := builder.Clean(cmd.Context())
			return report("clean", result)
		},
	}

	addTargetFlags(cmd, opts)
	return cmd
}

func addTargetFlags(cmd *cobra.Command, opts *buildOpts) {
	cmd.Flags().StringVarP(&opts.builderType, "type", "t", "", "Builder type (see `native-build list`)")
	cmd.Flags().StringVarP(&opts.buildDir, "build-dir", "B", opts.buildDir, "Build output directory")
	cmd.Flags().StringVarP(&opts.sourceDir, "source-dir", "S", opts.sourceDir, "Project source directory")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "Toolchain prefix overriding the default search locations")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "Per-command timeout (0 = none)")
	_ = cmd.MarkFlagRequired("type")
}

func createBuilder(root *rootOpts, typeName string, opts *buildOpts) (nativebuild.Builder, error) {
	builderType, err := nativebuild.ParseBuilderType(typeName)
	if err != nil {
		return nil, err
	}
	factory, err := root.newFactory()
	if err != nil {
		return nil, err
	}
	return factory.CreateFromConfig(nativebuild.BuildConfig{
		Type:            builderType,
		BuildDir:        opts.buildDir,
		SourceDir:       opts.sourceDir,
		ToolchainPrefix: opts.prefix,
		ExtraArgs:       opts.extraArgs,
		Parallel:        opts.parallel,
		CommandTimeout:  opts.timeout,
	})
}

func report(operation string, result *nativebuild.BuildResult) error {
	if result.Succeeded {
		color.Green("%s succeeded", operation)
		return nil
	}

	color.Red("%s failed", operation)
	if result.FailedCommand != nil {
		fmt.Printf("  command:   %s\n", result.FailedCommand)
		fmt.Printf("  exit code: %d\n", result.ExitCode)
	}
	if stderr := strings.TrimSpace(result.Stderr); stderr != "" {
		fmt.Println(stderr)
	}
	return result.Err
}
