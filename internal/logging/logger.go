package logging

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Logger writes timestamped diagnostic lines, normally to stderr so they
// never mix with rendered output on stdout. Debug lines appear only when the
// user asked for verbose output.
type Logger struct {
	out     io.Writer
	verbose bool
}

// New creates a logger on the given writer.
func New(out io.Writer, verbose bool) *Logger {
	return &Logger{out: out, verbose: verbose}
}

// Printf writes a single timestamped line.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || l.out == nil {
		return
	}
	line := fmt.Sprintf(format, args...)
	line = strings.TrimRight(line, "\n")
	timestamp := time.Now().Format(time.RFC3339)
	fmt.Fprintf(l.out, "[%s] %s\n", timestamp, line)
}

// Debugf writes a timestamped line only in verbose mode.
func (l *Logger) Debugf(format string, args ...any) {
	if l == nil || !l.verbose {
		return
	}
	l.Printf(format, args...)
}
