package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scopetrace/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "scopetrace", version.Version)
		if version.GitCommit != "" {
			fmt.Fprintln(cmd.OutOrStdout(), "commit:", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Fprintln(cmd.OutOrStdout(), "built:", version.BuildDate)
		}
	},
}
