package main

import (
	"io"

	charmlog "github.com/charmbracelet/log"

	"github.com/wudi/pdfdoc/observability"
)

// newLogger creates a logger with timestamp formatting, filtering at
// the given level.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// charmLogger adapts charmbracelet/log to the library's logging
// boundary.
type charmLogger struct {
	l *charmlog.Logger
}

func flatten(fields []observability.Field) []interface{} {
	kv := make([]interface{}, 0, len(fields)*2)
	for _, f := range fields {
		kv = append(kv, f.Key(), f.Value())
	}
	return kv
}

func (c charmLogger) Debug(msg string, fields ...observability.Field) {
	c.l.Debug(msg, flatten(fields)...)
}

func (c charmLogger) Info(msg string, fields ...observability.Field) {
	c.l.Info(msg, flatten(fields)...)
}

func (c charmLogger) Warn(msg string, fields ...observability.Field) {
	c.l.Warn(msg, flatten(fields)...)
}

func (c charmLogger) Error(msg string, fields ...observability.Field) {
	c.l.Error(msg, flatten(fields)...)
}

func (c charmLogger) With(fields ...observability.Field) observability.Logger {
	return charmLogger{c.l.With(flatten(fields)...)}
}
