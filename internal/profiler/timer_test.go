package profiler_test

import (
	"path/filepath"
	"testing"
	"time"

	"scopetrace/internal/profiler"
)

func TestStopIsIdempotent(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")
	sess, _ := newTestSession()

	sess.Begin("App", out)
	tm := profiler.StartTimer(sess, "once")
	tm.Stop()
	tm.Stop()
	tm.Stop()
	sess.End()

	if got := len(readTrace(t, out).Events()); got != 1 {
		t.Errorf("events = %d, want 1", got)
	}
}

func TestDeferredStopReports(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")
	sess, _ := newTestSession()
	sess.Begin("App", out)

	func() {
		tm := profiler.StartTimer(sess, "scoped")
		defer tm.Stop()
		time.Sleep(time.Millisecond)
	}()

	sess.End()

	events := readTrace(t, out).Events()
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	if events[0].Name != "scoped" {
		t.Errorf("name = %q, want scoped", events[0].Name)
	}
	if events[0].Dur <= 0 {
		t.Errorf("duration = %v, want > 0 after sleeping", events[0].Dur)
	}
}

func TestExplicitThenDeferredStopReportsOnce(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")
	sess, _ := newTestSession()
	sess.Begin("App", out)

	func() {
		tm := profiler.StartTimer(sess, "early")
		defer tm.Stop()
		tm.Stop() // early return path
	}()

	sess.End()

	if got := len(readTrace(t, out).Events()); got != 1 {
		t.Errorf("events = %d, want 1", got)
	}
}

func TestTimerWithNilSession(t *testing.T) {
	tm := profiler.StartTimer(nil, "nowhere")
	tm.Stop() // must not panic
}

func TestNilTimerStop(t *testing.T) {
	var tm *profiler.Timer
	tm.Stop() // must not panic
}

func TestTimerRecordsGoroutineIdentity(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")
	sess, _ := newTestSession()
	sess.Begin("App", out)

	done := make(chan struct{})
	go func() {
		defer close(done)
		profiler.StartTimer(sess, "other-goroutine").Stop()
	}()
	<-done
	profiler.StartTimer(sess, "this-goroutine").Stop()
	sess.End()

	events := readTrace(t, out).Events()
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	byName := map[string]uint64{}
	for _, ev := range events {
		if ev.Tid == 0 {
			t.Errorf("event %q has zero tid", ev.Name)
		}
		byName[ev.Name] = ev.Tid
	}
	if byName["other-goroutine"] == byName["this-goroutine"] {
		t.Errorf("both events share tid %d, want distinct goroutines", byName["this-goroutine"])
	}
}
