package profiler

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Logger receives the session's warnings and errors. Implementations must
// not call back into the profiler: the session invokes the logger while
// holding its lock, and a re-entrant call deadlocks.
type Logger interface {
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

var (
	warnLabel  = color.New(color.FgYellow, color.Bold)
	errorLabel = color.New(color.FgRed, color.Bold)
)

// stderrLogger is the default sink: one colorized line per message on
// stderr.
type stderrLogger struct{}

func (stderrLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", warnLabel.Sprint("warning:"), fmt.Sprintf(format, args...))
}

func (stderrLogger) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorLabel.Sprint("error:"), fmt.Sprintf(format, args...))
}

type nopLogger struct{}

func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}
