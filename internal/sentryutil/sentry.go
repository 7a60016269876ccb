// Package sentryutil reports errors to Sentry.
package sentryutil

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/AlexZinkM/creatorweb3/internal/apperr"
	"github.com/AlexZinkM/creatorweb3/internal/logger"
)

const errorContextName = "error context"

// Init configures the global Sentry client. An empty dsn leaves reporting disabled.
func Init(dsn, environment string) error {
	if dsn == "" {
		return nil
	}
	return sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		AttachStacktrace: true,
		BeforeSend:       UpdateErrorFingerprints,
	})
}

// Flush waits for buffered events to be sent
func Flush() {
	sentry.Flush(2 * time.Second)
}

// ReportError sends err to the hub of ctx, or the current hub when ctx has none
func ReportError(ctx context.Context, err error) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if hub.Client() == nil {
		return
	}

	// Use a new scope so the error context does not persist beyond this error
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("kind", string(apperr.KindOf(err)))
		scope.SetContext(errorContextName, map[string]interface{}{"type": fmt.Sprintf("%T", err)})
		hub.CaptureException(err)
	})
	logger.For(ctx).WithError(err).Debug("reported error to sentry")
}

// UpdateErrorFingerprints groups classified errors by kind and message instead of by stack
func UpdateErrorFingerprints(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
	if event == nil || hint == nil || hint.OriginalException == nil {
		return event
	}

	if kind := apperr.KindOf(hint.OriginalException); kind != apperr.KindUnknown {
		event.Fingerprint = []string{"{{ default }}", string(kind)}
	}
	return event
}
