// Package rflog is a small leveled logger for the scheduler core.
//
// A severity-tagged line writer rather than a structured-logging
// framework: the scheduler only ever needs four levels, and nothing
// on the frame path may block on log output.
package rflog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/lestrrat-go/strftime"
)

// Level is a log severity, ordered least to most severe.
type Level int

const (
	Debug Level = iota
	Info
	Error
	Fatal
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	default:
		return "?"
	}
}

// Logger writes leveled, timestamped lines to an underlying writer.
//
// The zero value is not usable; construct with New. A Logger is safe
// for concurrent use; in practice only the frame-timer goroutine and
// the transceiver I/O goroutine ever call into it concurrently.
type Logger struct {
	mu        sync.Mutex
	out       io.Writer
	min       Level
	tsPattern *strftime.Strftime
}

// DefaultTimestampFormat prefixes each line with a second-resolution
// local timestamp.
const DefaultTimestampFormat = "%Y-%m-%d %H:%M:%S"

// New builds a Logger writing to out, suppressing anything below min.
// An empty timestampFormat disables timestamps entirely.
func New(out io.Writer, min Level, timestampFormat string) (*Logger, error) {
	if out == nil {
		out = os.Stderr
	}
	l := &Logger{out: out, min: min}
	if timestampFormat != "" {
		p, err := strftime.New(timestampFormat)
		if err != nil {
			return nil, fmt.Errorf("rflog: bad timestamp format %q: %w", timestampFormat, err)
		}
		l.tsPattern = p
	}
	return l, nil
}

func (l *Logger) log(level Level, format string, args ...any) {
	if level < l.min {
		return
	}

	msg := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.tsPattern != nil {
		ts := l.tsPattern.FormatString(time.Now()) + " "
		fmt.Fprintf(l.out, "%s%s: %s\n", ts, level, msg)
		return
	}
	fmt.Fprintf(l.out, "%s: %s\n", level, msg)
}

func (l *Logger) Debug(format string, args ...any) { l.log(Debug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.log(Info, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.log(Error, format, args...) }

// Fatal logs at FATAL and returns. The scheduler never terminates the
// process because one primitive was malformed; the level only marks
// conditions the upper layer must fix.
func (l *Logger) Fatal(format string, args ...any) { l.log(Fatal, format, args...) }

// Discard is a Logger that drops everything; useful as a test default.
func Discard() *Logger {
	l, _ := New(io.Discard, Fatal+1, "")
	return l
}
