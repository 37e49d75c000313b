// Package logging configures the process-wide logrus logger and carries
// request-scoped fields through a context.
package logging

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

type ctxKey struct{}

// Configure sets the level and output format of the standard logrus logger
func Configure(level, format string, out io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	logrus.SetLevel(lvl)

	switch format {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unsupported log format %q", format)
	}

	if out != nil {
		logrus.SetOutput(out)
	}
	return nil
}

// WithRequestID returns a context whose logger is tagged with the request id
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, FromContext(ctx).WithField("request_id", requestID))
}

// FromContext returns the request-scoped entry, or a bare entry on the standard logger
func FromContext(ctx context.Context) *logrus.Entry {
	if ctx != nil {
		if entry, ok := ctx.Value(ctxKey{}).(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
