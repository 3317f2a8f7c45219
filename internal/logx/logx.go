// Package logx wraps logrus the way cmd/root.go's initLogger does: a
// text formatter, a configurable level, and an optional file sink. The
// core engine never imports this package directly — it accepts a
// *Logger through parser.Options.Logger, nil by default, so a parse
// call stays a pure function of its inputs unless a host opts in.
package logx

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger traces pipeline stage transitions. A nil *Logger is valid and
// silent — every method is a no-op on a nil receiver.
type Logger struct {
	entry   *logrus.Entry
	logFile *os.File
}

// New builds a Logger at the given level ("debug", "info", "warn",
// "error", ...), optionally tee'd to a file at path. An invalid level
// falls back to Info, matching initLogger's behaviour.
func New(level, path string) (*Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}

	l := logrus.New()
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lg := &Logger{entry: logrus.NewEntry(l)}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("logx: failed to open log file %s: %w", path, err)
		}
		lg.logFile = f
		l.SetOutput(f)
	}
	return lg, nil
}

// Close releases the file sink, if any.
func (l *Logger) Close() error {
	if l == nil || l.logFile == nil {
		return nil
	}
	return l.logFile.Close()
}

// WithField returns a derived Logger that attaches field=value to
// every subsequent entry (e.g. the active domain, a session id).
func (l *Logger) WithField(field string, value any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{entry: l.entry.WithField(field, value), logFile: l.logFile}
}

func (l *Logger) Debugf(format string, args ...any) {
	if l == nil {
		return
	}
	l.entry.Debugf(format, args...)
}

func (l *Logger) Infof(format string, args ...any) {
	if l == nil {
		return
	}
	l.entry.Infof(format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	if l == nil {
		return
	}
	l.entry.Warnf(format, args...)
}
