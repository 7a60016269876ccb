package logger

import (
	"context"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

type contextKey struct{}

var defaultLogger = logrus.New()
var defaultEntry = logrus.NewEntry(defaultLogger)

// Configure sets the level and output format of the default logger.
// Unknown levels fall back to info.
func Configure(level, format string, out io.Writer) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	defaultLogger.SetLevel(lvl)
	if out != nil {
		defaultLogger.SetOutput(out)
	}
	if strings.EqualFold(format, "json") {
		defaultLogger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		defaultLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// NewContextWithFields returns a context whose logger carries fields.
func NewContextWithFields(parent context.Context, fields logrus.Fields) context.Context {
	return context.WithValue(parent, contextKey{}, For(parent).WithFields(fields))
}

// For returns the logger stored in ctx, or the default logger.
func For(ctx context.Context) *logrus.Entry {
	if ctx == nil {
		return defaultEntry
	}
	if entry, ok := ctx.Value(contextKey{}).(*logrus.Entry); ok {
		return entry.WithContext(ctx)
	}
	return defaultEntry.WithContext(ctx)
}
