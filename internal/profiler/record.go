package profiler

import "time"

// Record describes one completed measurement. A Timer builds it at stop
// time and hands it to its session, which serializes it exactly once; it is
// immutable after construction.
type Record struct {
	Name  string        // scope or function label
	Start float64       // microseconds since the session epoch
	Dur   time.Duration // elapsed wall-clock time
	TID   uint64        // reporting goroutine
}
