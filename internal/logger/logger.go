// Package logger provides the leveled logging used by the huffpack command.
package logger

import (
	"io"
	"log"
)

// Logger is a minimal leveled logger.
type Logger interface {
	// Infof logs progress; it is discarded unless verbose.
	Infof(format string, v ...any)

	// Errorf logs a failure.
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l       *log.Logger
	verbose bool
}

// New returns a Logger writing to w.  Infof is discarded unless verbose.
func New(w io.Writer, verbose bool) Logger {
	return &stdLogger{l: log.New(w, "huffpack: ", 0), verbose: verbose}
}

// Infof logs with an [INFO] prefix when verbose.
func (l *stdLogger) Infof(format string, v ...any) {
	if l.verbose {
		l.l.Printf("[INFO] "+format, v...)
	}
}

// Errorf logs with an [ERROR] prefix.
func (l *stdLogger) Errorf(format string, v ...any) { l.l.Printf("[ERROR] "+format, v...) }
