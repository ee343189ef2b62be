// Package profiler records scoped wall-clock timings and writes them as a
// Chrome Trace Event Format JSON file for inspection in a trace viewer
// (chrome://tracing, Perfetto).
//
// # Usage
//
// Construct one Session at the application's composition root and share the
// pointer with any code that records timings:
//
//	sess := profiler.NewSession()
//	sess.Begin("startup", "results.json")
//	defer sess.End()
//
//	t := profiler.StartTimer(sess, "load_modules")
//	defer t.Stop()
//
// Every timer reports exactly once, on explicit Stop or on scope exit via
// defer, whichever comes first. The session serializes concurrent writes
// behind one lock, so timers may stop from any number of goroutines.
//
// # Failure behavior
//
// The profiler never aborts the embedding application. A failed file open
// is logged and leaves no session open; timers that stop with no open
// session are dropped silently. The output file is valid JSON only after
// End returns.
package profiler
