package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	nativebuild "github.com/kinchow/native-build-go"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the supported builder types",
		Run: func(cmd *cobra.Command, args []string) {
			for _, t := range nativebuild.AllBuilderTypes() {
				cmd.Printf("%s %s\n", color.CyanString("%-22s", string(t)), t.DisplayName())
			}
		},
	}
}
