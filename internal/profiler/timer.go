package profiler

import "time"

// epoch anchors all timestamps. Trace viewers only need a shared monotonic
// origin, not wall-clock time.
var epoch = time.Now()

// Timer measures one scope. Start it where the scope begins and arrange
// for Stop to run on every exit path:
//
//	t := profiler.StartTimer(sess, "parse")
//	defer t.Stop()
//
// A Timer reports exactly once: the first Stop (explicit or deferred)
// submits the record, later calls are no-ops. A Timer belongs to the
// goroutine that started it and is not safe for concurrent use.
type Timer struct {
	session *Session
	name    string
	start   time.Time
	stopped bool
}

// StartTimer begins timing a scope named name, capturing the start instant
// immediately. A nil session is allowed; the timer then measures but
// reports nowhere.
func StartTimer(s *Session, name string) *Timer {
	return &Timer{session: s, name: name, start: time.Now()}
}

// Stop computes the elapsed time and submits a Record to the timer's
// session. Idempotent: only the first call reports.
func (t *Timer) Stop() {
	if t == nil || t.stopped {
		return
	}
	t.stopped = true

	if t.session == nil {
		return
	}
	t.session.record(Record{
		Name:  t.name,
		Start: float64(t.start.Sub(epoch)) / float64(time.Microsecond),
		Dur:   time.Since(t.start),
		TID:   goroutineID(),
	})
}
