// Package util holds small shared helpers.
package util

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// Level is a log severity threshold.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a config string onto a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger is a leveled wrapper over the standard logger. A nil Logger is
// valid and discards everything.
type Logger struct {
	level Level
	base  *log.Logger
}

func NewLogger(level Level, w io.Writer) *Logger {
	return &Logger{level: level, base: log.New(w, "", log.LstdFlags)}
}

func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, "DEBUG", format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.logf(LevelInfo, "INFO", format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(LevelWarn, "WARN", format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, "ERROR", format, args...) }

func (l *Logger) logf(level Level, tag, format string, args ...any) {
	if l == nil || level < l.level {
		return
	}
	l.base.Printf("%s %s", tag, fmt.Sprintf(format, args...))
}
