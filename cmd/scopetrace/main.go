package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"scopetrace/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "scopetrace",
	Short: "Scoped-timer instrumentation profiler",
	Long:  `scopetrace records scoped wall-clock timings and writes them as a Chrome Trace Event Format file for an external trace viewer`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile of scopetrace itself to this path")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to this path on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime execution trace to this path")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
