// Package workload generates a deterministic, instrumented body of work so
// the demo command can produce a non-trivial trace.
package workload

import (
	"context"
	"fmt"
	"sort"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"scopetrace/internal/profiler"
)

// Config sizes a synthetic run.
type Config struct {
	Jobs  int // concurrent workers
	Tasks int // timed units of work per worker
}

// Stats summarizes a completed run.
type Stats struct {
	Records uint64 // timers that reported: one per task plus one per worker
}

// Run executes the workload against s. Every worker and every task reports
// through its own timer, so a successful run yields Jobs*(Tasks+1) trace
// events.
func Run(ctx context.Context, s *profiler.Session, cfg Config) (Stats, error) {
	if cfg.Jobs <= 0 {
		cfg.Jobs = 1
	}
	if cfg.Tasks <= 0 {
		cfg.Tasks = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	for job := 0; job < cfg.Jobs; job++ {
		job := job
		g.Go(func() error {
			t := profiler.StartTimer(s, fmt.Sprintf("worker-%d", job))
			defer t.Stop()

			for task := 0; task < cfg.Tasks; task++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				runTask(s, job, task)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	jobs, err := safecast.Conv[uint64](cfg.Jobs)
	if err != nil {
		return Stats{}, fmt.Errorf("jobs overflow: %w", err)
	}
	perJob, err := safecast.Conv[uint64](cfg.Tasks + 1)
	if err != nil {
		return Stats{}, fmt.Errorf("tasks overflow: %w", err)
	}
	return Stats{Records: jobs * perJob}, nil
}

// runTask burns a predictable amount of CPU inside one timed scope. The
// mix of sorting and recursion keeps durations non-zero without making the
// demo slow.
func runTask(s *profiler.Session, job, task int) {
	t := profiler.StartTimer(s, fmt.Sprintf("task-%d-%d", job, task))
	defer t.Stop()

	n := 256 + (job*31+task*7)%256
	xs := make([]int, n)
	for i := range xs {
		xs[i] = (i*2654435761 ^ (job + task)) % n
	}
	sort.Ints(xs)
	fib(18 + task%4)
}

func fib(n int) int {
	if n < 2 {
		return n
	}
	return fib(n-1) + fib(n-2)
}
