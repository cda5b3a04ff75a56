// Package logging provides subsystem-tagged diagnostic output.
// Debug lines are only written when debug logging is enabled (--debug).
package logging

import (
	"io"
	"log"
	"strings"
)

// Logger writes "[subsystem] message" lines to an underlying writer.
type Logger struct {
	base      *log.Logger
	subsystem string
	debug     bool
}

// New creates a Logger writing to w. If debug is false, Debug calls are dropped.
func New(w io.Writer, debug bool) *Logger {
	return &Logger{
		base:  log.New(w, "", log.Ltime),
		debug: debug,
	}
}

// Discard returns a Logger that writes nothing.
func Discard() *Logger {
	return New(io.Discard, false)
}

// With returns a copy of the logger tagged with the given subsystem.
func (l *Logger) With(subsystem string) *Logger {
	return &Logger{
		base:      l.base,
		subsystem: subsystem,
		debug:     l.debug,
	}
}

// DebugEnabled reports whether Debug output is written.
func (l *Logger) DebugEnabled() bool {
	return l != nil && l.debug
}

// Info logs an informational message (always written).
func (l *Logger) Info(format string, args ...any) {
	if l == nil {
		return
	}
	l.printf(format, args...)
}

// Debug logs a debug message (only written when debug is enabled).
func (l *Logger) Debug(format string, args ...any) {
	if !l.DebugEnabled() {
		return
	}
	l.printf(format, args...)
}

func (l *Logger) printf(format string, args ...any) {
	if l.subsystem != "" {
		format = "[" + l.subsystem + "] " + format
	}
	l.base.Printf(format, args...)
}

// Truncate shortens s to maxLen runes for one-line logs, adding an ellipsis.
func Truncate(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
