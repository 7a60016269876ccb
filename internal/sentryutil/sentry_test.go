package sentryutil

import (
	"errors"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"

	"github.com/AlexZinkM/creatorweb3/internal/apperr"
)

func TestUpdateErrorFingerprints(t *testing.T) {
	event := &sentry.Event{}
	err := apperr.Wrap(apperr.KindRemoteCallFailed, "failed to fetch creators", errors.New("timeout"))

	got := UpdateErrorFingerprints(event, &sentry.EventHint{OriginalException: err})
	assert.Equal(t, []string{"{{ default }}", "REMOTE_CALL_FAILED"}, got.Fingerprint)

	plain := UpdateErrorFingerprints(&sentry.Event{}, &sentry.EventHint{OriginalException: errors.New("x")})
	assert.Empty(t, plain.Fingerprint)

	assert.Nil(t, UpdateErrorFingerprints(nil, nil))
}

func TestInitWithoutDSN(t *testing.T) {
	assert.NoError(t, Init("", "test"))
}
