// Package logger provides the application-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Logger is the minimal logging surface the rest of the module depends on.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Fields are structured key/value pairs attached to a single entry.
type Fields map[string]any

// New returns a JSON logger writing to stdout at the given level.
func New(level string) Logger {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter returns a JSON logger writing to w at the given level.
func NewWithWriter(level string, w io.Writer) Logger {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = "info"
	}
	logLevel := slog.LevelByName(level)

	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= logLevel {
			levels = append(levels, lv)
		}
	}

	h := handler.NewIOWriterHandler(w, levels)
	h.SetFormatter(slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{
			slog.FieldKeyDatetime,
			slog.FieldKeyLevel,
			slog.FieldKeyMessage,
			slog.FieldKeyData,
		}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "time",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "msg",
		}
		f.TimeFormat = "2006-01-02T15:04:05Z07:00"
	}))

	return slog.NewWithHandlers(h)
}

// Discard returns a logger that drops everything.
func Discard() Logger {
	return NewWithWriter("error", io.Discard)
}

// ErrorWithFields logs msg at error level with structured fields when the
// logger supports them, and falls back to a plain line otherwise.
func ErrorWithFields(l Logger, msg string, fields Fields) {
	if lg, ok := l.(*slog.Logger); ok {
		lg.WithFields(slog.M(fields)).Error(msg)
		return
	}
	l.Errorf("%s %v", msg, map[string]any(fields))
}

// WarnWithFields is ErrorWithFields at warn level.
func WarnWithFields(l Logger, msg string, fields Fields) {
	if lg, ok := l.(*slog.Logger); ok {
		lg.WithFields(slog.M(fields)).Warn(msg)
		return
	}
	l.Warnf("%s %v", msg, map[string]any(fields))
}

// InfoWithFields is ErrorWithFields at info level.
func InfoWithFields(l Logger, msg string, fields Fields) {
	if lg, ok := l.(*slog.Logger); ok {
		lg.WithFields(slog.M(fields)).Info(msg)
		return
	}
	l.Infof("%s %v", msg, map[string]any(fields))
}
