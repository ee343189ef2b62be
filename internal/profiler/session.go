package profiler

import (
	"bufio"
	"os"
	"sync"
)

// DefaultPath is used when Begin is given an empty output path.
const DefaultPath = "results.json"

const (
	// The trailing {} is a sentinel: with one element always present,
	// every record can be comma-prefixed unconditionally.
	traceHeader = `{"otherData": {},"traceEvents":[{}`
	traceFooter = `]}`
)

// Session owns one trace output file and serializes concurrent writes to
// it. Construct it at the application's composition root and share the
// pointer with any code that records timings; all methods are safe for
// concurrent use. At most one trace file is open per Session at a time.
type Session struct {
	mu    sync.Mutex
	name  string
	file  *os.File
	out   *bufio.Writer
	open  bool
	flush FlushPolicy
	log   Logger
}

// NewSession creates a closed Session. Timings recorded before Begin (or
// after End) are dropped silently.
func NewSession(opts ...Option) *Session {
	s := &Session{log: stderrLogger{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Begin opens path for writing, truncating any existing content, and
// writes the trace header. An empty path means DefaultPath. If a session
// is already open it is closed first, with a warning. If the file cannot
// be opened an error is logged and no session is left open; records are
// then dropped until the next successful Begin.
func (s *Session) Begin(name, path string) {
	if path == "" {
		path = DefaultPath
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		s.log.Warnf("Begin(%q) while session %q is still open, closing it first", name, s.name)
		s.endLocked()
	}

	f, err := os.Create(path)
	if err != nil {
		s.log.Errorf("cannot open trace file %q: %v", path, err)
		return
	}

	s.name = name
	s.file = f
	s.out = bufio.NewWriter(f)
	s.open = true

	// Best-effort writes throughout: a trace that fails to write must
	// never take the host application down with it.
	_, _ = s.out.WriteString(traceHeader)
	_ = s.out.Flush()
}

// End writes the trace footer, flushes and closes the file, and clears
// session state. The file is valid JSON only after End returns. No-op when
// no session is open.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endLocked()
}

// Name reports the name of the open session, or "" when closed.
func (s *Session) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// record appends one serialized entry to the open trace file. Dropped
// silently when no session is open, so timers never check session state.
func (s *Session) record(r Record) {
	// Serialize outside the lock; only the write is contended.
	buf := appendRecord(nil, r)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return
	}
	_, _ = s.out.Write(buf)
	if s.flush == FlushEveryRecord {
		_ = s.out.Flush()
	}
}

// endLocked closes the open session. Callers must hold s.mu.
func (s *Session) endLocked() {
	if !s.open {
		return
	}
	_, _ = s.out.WriteString(traceFooter)
	_ = s.out.Flush()
	_ = s.file.Close()

	s.name = ""
	s.file = nil
	s.out = nil
	s.open = false
}
