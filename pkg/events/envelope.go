// Package events provides the generic event infrastructure for domain event
// emission. It defines the Envelope type wrapping domain events with
// consistent metadata and the EventSink interface events are appended to.
package events

import (
	"context"
	"encoding/json"
	"time"
)

// Envelope wraps domain events with consistent metadata for reliable event
// processing. The envelope is a generic container for any domain-specific
// payload, with standard fields for routing, deduplication, and workflow
// correlation.
type Envelope struct {
	// ID uniquely identifies this event instance.
	ID string `json:"id"`

	// Type identifies the event for routing and processing,
	// e.g. "ProfileScored", "ReportTriangulated".
	Type string `json:"type"`

	// Source identifies the component that emitted this event.
	Source string `json:"source"`

	// Version enables schema evolution, following semantic versioning.
	Version string `json:"version"`

	// Timestamp records when the event was emitted.
	Timestamp time.Time `json:"timestamp"`

	// IdempotencyKey ensures exactly-once processing during retries.
	IdempotencyKey string `json:"idempotency_key"`

	// TenantID identifies the tenant for multi-tenant filtering.
	TenantID string `json:"tenant_id"`

	// WorkflowID identifies the workflow execution that triggered the event.
	WorkflowID string `json:"workflow_id"`

	// RunID distinguishes retries of the same workflow.
	RunID string `json:"run_id"`

	// Payload contains the domain-specific event data as JSON.
	// Schema varies by Type and Version.
	Payload json.RawMessage `json:"payload"`
}

// EventSink is the interface events are emitted through. Implementations may
// be database outbox tables, message queues, or log outputs; all of that is a
// collaborator concern. Implementations should treat duplicate idempotency
// keys as no-ops and return quickly.
//
// Event emission is best-effort: callers must not fail their primary
// operation because a sink append failed.
type EventSink interface {
	// Append adds an event to the sink with best-effort delivery.
	Append(ctx context.Context, envelope Envelope) error
}

// NoOpEventSink is a null EventSink for tests or disabled event emission.
type NoOpEventSink struct{}

// Append implements EventSink with no-op behavior.
func (n *NoOpEventSink) Append(_ context.Context, _ Envelope) error { return nil }

// NewNoOpEventSink creates a new no-op event sink.
func NewNoOpEventSink() EventSink { return &NoOpEventSink{} }
