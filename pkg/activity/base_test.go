package activity //nolint:testpackage // Need access to unexported helpers

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jermiah/auralearn-sub001/pkg/events"
)

// flakySink fails the first n appends, then succeeds.
type flakySink struct {
	mu       sync.Mutex
	failures int
	appended []events.Envelope
}

func (f *flakySink) Append(_ context.Context, envelope events.Envelope) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return errors.New("sink unavailable")
	}
	f.appended = append(f.appended, envelope)
	return nil
}

func (f *flakySink) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.appended)
}

func TestGetWorkflowContext_TestFallback(t *testing.T) {
	base := NewBaseActivities(nil)

	wfCtx := base.GetWorkflowContext(context.Background())
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", wfCtx.WorkflowID,
		"non-activity contexts must get the fixed test workflow ID")
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", wfCtx.TenantID)
	assert.Equal(t, "test-activity", wfCtx.ActivityID)
	assert.NotEmpty(t, wfCtx.RunID)
}

func TestEmitEventSafe(t *testing.T) {
	envelope := events.Envelope{
		Type:           "ProfileScored",
		IdempotencyKey: "key-1",
	}

	t.Run("appends to the sink", func(t *testing.T) {
		sink := &flakySink{}
		base := NewBaseActivities(sink)

		base.EmitEventSafe(context.Background(), envelope, "ProfileScored")
		assert.Equal(t, 1, sink.count())
	})

	t.Run("retries a transient failure once", func(t *testing.T) {
		sink := &flakySink{failures: 1}
		base := NewBaseActivities(sink)

		base.EmitEventSafe(context.Background(), envelope, "ProfileScored")
		assert.Equal(t, 1, sink.count())
	})

	t.Run("gives up after exhausting attempts without panicking", func(t *testing.T) {
		sink := &flakySink{failures: 10}
		base := NewBaseActivities(sink)

		base.EmitEventSafe(context.Background(), envelope, "ProfileScored")
		assert.Equal(t, 0, sink.count())
	})

	t.Run("nil sink is a no-op", func(t *testing.T) {
		base := NewBaseActivities(nil)
		assert.NotPanics(t, func() {
			base.EmitEventSafe(context.Background(), envelope, "ProfileScored")
		})
	})

	t.Run("cancelled context stops the retry", func(t *testing.T) {
		sink := &flakySink{failures: 10}
		base := NewBaseActivities(sink)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		base.EmitEventSafe(ctx, envelope, "ProfileScored")
		assert.Equal(t, 0, sink.count())
	})
}

func TestSafeLog_NonActivityContext(t *testing.T) {
	require.NotPanics(t, func() {
		SafeLog(context.Background(), "message", "key", "value")
		SafeLogError(context.Background(), "message", "key", "value")
		RecordHeartbeat(context.Background(), "detail")
	})
}
