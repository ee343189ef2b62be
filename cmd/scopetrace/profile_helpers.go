package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scopetrace/internal/prof"
)

// setupProfiling inspects the persistent profiling flags and enables the
// corresponding runtime profilers. It returns a cleanup function that is
// safe to call multiple times.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	root := cmd.Root()

	cpuPath, err := root.PersistentFlags().GetString("cpu-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	memPath, err := root.PersistentFlags().GetString("mem-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	tracePath, err := root.PersistentFlags().GetString("runtime-trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}

	stopCPU := func() {}
	stopTrace := func() {}

	if cpuPath != "" {
		stop, err := prof.StartCPU(cpuPath)
		if err != nil {
			return nil, fmt.Errorf("failed to start cpu profile: %w", err)
		}
		stopCPU = stop
	}
	if tracePath != "" {
		stop, err := prof.StartTrace(tracePath)
		if err != nil {
			// ensure cpu profile is stopped on error
			stopCPU()
			return nil, fmt.Errorf("failed to start runtime trace: %w", err)
		}
		stopTrace = stop
	}

	cleaned := false
	cleanup := func() {
		if cleaned {
			return
		}
		cleaned = true
		stopTrace()
		stopCPU()
		if memPath != "" {
			if err := prof.WriteHeap(memPath); err != nil {
				fmt.Fprintf(os.Stderr, "failed to write heap profile: %v\n", err)
			}
		}
	}

	return cleanup, nil
}
