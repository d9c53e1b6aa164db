package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/randalmurphal/scanplan/notify"
)

// TestContext returns a context that is canceled when the test ends.
func TestContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return ctx
}

// TestContextWithTimeout returns a context with a timeout.
// The context is also canceled when the test ends.
func TestContextWithTimeout(t *testing.T, timeout time.Duration) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)

	return ctx
}

// RecordingContext returns a test context carrying a RecordingNotifier and
// a fixed run ID, so tests can assert on emitted events.
func RecordingContext(t *testing.T) (context.Context, *notify.RecordingNotifier) {
	t.Helper()

	rec := &notify.RecordingNotifier{}
	ctx := notify.WithNotifier(TestContext(t), rec)
	ctx = notify.WithRunID(ctx, "test-"+t.Name())
	return ctx, rec
}
