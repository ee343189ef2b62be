package profiler

import "fmt"

// FlushPolicy controls when written trace bytes reach the file.
type FlushPolicy uint8

const (
	// FlushEveryRecord flushes after every write. Durability over
	// throughput: a crash loses at most the closing brackets.
	FlushEveryRecord FlushPolicy = iota
	// FlushOnEnd buffers records in memory and flushes when the session
	// ends.
	FlushOnEnd
)

// String returns the string representation of FlushPolicy.
func (p FlushPolicy) String() string {
	switch p {
	case FlushEveryRecord:
		return "every-record"
	case FlushOnEnd:
		return "on-end"
	default:
		return "unknown"
	}
}

// ParseFlushPolicy converts a string to a FlushPolicy.
func ParseFlushPolicy(s string) (FlushPolicy, error) {
	switch s {
	case "every-record":
		return FlushEveryRecord, nil
	case "on-end":
		return FlushOnEnd, nil
	default:
		return FlushEveryRecord, fmt.Errorf("invalid flush policy: %q (expected: every-record|on-end)", s)
	}
}

// Option configures a Session.
type Option func(*Session)

// WithLogger replaces the session's warning/error sink. Pass nil to
// discard warnings and errors.
func WithLogger(l Logger) Option {
	return func(s *Session) {
		if l == nil {
			l = nopLogger{}
		}
		s.log = l
	}
}

// WithFlushPolicy sets when trace bytes are flushed to the file. The
// default is FlushEveryRecord.
func WithFlushPolicy(p FlushPolicy) Option {
	return func(s *Session) { s.flush = p }
}
