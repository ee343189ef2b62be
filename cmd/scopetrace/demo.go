package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scopetrace/internal/config"
	"scopetrace/internal/profiler"
	"scopetrace/internal/tef"
	"scopetrace/internal/workload"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run an instrumented synthetic workload and write a trace",
	Long: `Runs a parallel synthetic workload with every worker and task wrapped in a
scoped timer, producing a trace file you can open in a trace viewer.
Settings come from scopetrace.toml when present; flags override it.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().String("out", "", "trace output path (default "+profiler.DefaultPath+")")
	demoCmd.Flags().String("name", "", "session name (default demo)")
	demoCmd.Flags().Int("jobs", 0, "concurrent workers (default 4)")
	demoCmd.Flags().Int("tasks", 0, "timed tasks per worker (default 16)")
	demoCmd.Flags().String("flush", "", "flush policy (every-record|on-end)")
}

// demoSettings is the merged manifest + flag + default configuration for
// one demo run.
type demoSettings struct {
	name  string
	out   string
	jobs  int
	tasks int
	flush profiler.FlushPolicy
}

// resolveDemoSettings merges, in increasing priority: built-in defaults,
// the scopetrace.toml manifest found above startDir, then explicit flags.
func resolveDemoSettings(cmd *cobra.Command, startDir string) (demoSettings, error) {
	settings := demoSettings{
		name:  "demo",
		out:   profiler.DefaultPath,
		jobs:  4,
		tasks: 16,
		flush: profiler.FlushEveryRecord,
	}

	manifest, ok, err := config.Load(startDir)
	if err != nil {
		return demoSettings{}, err
	}
	if ok {
		if manifest.Config.Session.Name != "" {
			settings.name = manifest.Config.Session.Name
		}
		if manifest.Config.Session.Output != "" {
			settings.out = manifest.Config.Session.Output
		}
		if manifest.Config.Session.Flush != "" {
			// Already validated by config.Load.
			settings.flush, _ = profiler.ParseFlushPolicy(manifest.Config.Session.Flush)
		}
		if manifest.Config.Workload.Jobs > 0 {
			settings.jobs = manifest.Config.Workload.Jobs
		}
		if manifest.Config.Workload.Tasks > 0 {
			settings.tasks = manifest.Config.Workload.Tasks
		}
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		settings.name, _ = flags.GetString("name")
	}
	if flags.Changed("out") {
		settings.out, _ = flags.GetString("out")
	}
	if flags.Changed("jobs") {
		settings.jobs, _ = flags.GetInt("jobs")
	}
	if flags.Changed("tasks") {
		settings.tasks, _ = flags.GetInt("tasks")
	}
	if flags.Changed("flush") {
		raw, _ := flags.GetString("flush")
		policy, err := profiler.ParseFlushPolicy(raw)
		if err != nil {
			return demoSettings{}, err
		}
		settings.flush = policy
	}

	if settings.jobs <= 0 {
		return demoSettings{}, fmt.Errorf("jobs must be positive, got %d", settings.jobs)
	}
	if settings.tasks <= 0 {
		return demoSettings{}, fmt.Errorf("tasks must be positive, got %d", settings.tasks)
	}
	return settings, nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	if err := setupColor(cmd); err != nil {
		return err
	}

	cleanup, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	settings, err := resolveDemoSettings(cmd, ".")
	if err != nil {
		return err
	}

	// Composition root: the one Session shared by everything that records.
	sess := profiler.NewSession(profiler.WithFlushPolicy(settings.flush))
	sess.Begin(settings.name, settings.out)

	stats, err := workload.Run(cmd.Context(), sess, workload.Config{
		Jobs:  settings.jobs,
		Tasks: settings.tasks,
	})
	sess.End()
	if err != nil {
		return fmt.Errorf("workload failed: %w", err)
	}

	if !quiet {
		doc, err := tef.ReadFile(settings.out)
		if err != nil {
			return fmt.Errorf("trace was written but does not parse: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d events (expected %d) to %s\n",
			len(doc.Events()), stats.Records, settings.out)
	}
	return nil
}
