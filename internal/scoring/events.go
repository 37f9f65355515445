// Package scoring implements the Temporal activity that scores raw
// assessment responses into profiles. It provides the domain-specific
// activity, event emission, and error classification for embedding the pure
// scoring core in workflow contexts.
package scoring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jermiah/auralearn-sub001/internal/domain"
	"github.com/jermiah/auralearn-sub001/pkg/activity"
	"github.com/jermiah/auralearn-sub001/pkg/events"
)

// EventEmitter handles domain event emission for scoring operations.
// It bridges domain event creation and the base activity event
// infrastructure. All emission is best-effort: failures are logged without
// affecting the scoring activity.
type EventEmitter struct{ base activity.BaseActivities }

// NewEventEmitter creates an EventEmitter with base activity infrastructure.
func NewEventEmitter(base activity.BaseActivities) *EventEmitter {
	return &EventEmitter{base: base}
}

// EmitProfileScored emits a ProfileScored event for an assessment profile.
func (e *EventEmitter) EmitProfileScored(
	ctx context.Context,
	profile *domain.AssessmentProfile,
	wfCtx activity.WorkflowContext,
	clientIdemKey string,
	occurredAt time.Time,
) {
	tenantID, err := parseUUID(wfCtx.TenantID, "tenant")
	if err != nil {
		activity.SafeLogError(ctx, "Failed to parse tenant ID for ProfileScored event",
			"tenant_id", wfCtx.TenantID,
			"error", err)
		return
	}

	domainEvent, err := domain.NewProfileScoredEvent(
		tenantID,
		wfCtx.WorkflowID,
		wfCtx.RunID,
		occurredAt,
		profile,
		clientIdemKey,
	)
	if err != nil {
		activity.SafeLogError(ctx, "Failed to create ProfileScored event",
			"source_id", profile.SourceID,
			"error", err)
		return
	}

	e.base.EmitEventSafe(ctx, toEnvelope(domainEvent), "ProfileScored")
}

// parseUUID safely parses a string as UUID with a descriptive error message.
func parseUUID(input, context string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(input)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s UUID '%s': %w", context, input, err)
	}
	return parsed, nil
}

// toEnvelope converts a domain.EventEnvelope to the generic events.Envelope,
// bridging the domain event system with the base activity infrastructure.
func toEnvelope(domainEvent domain.EventEnvelope) events.Envelope {
	return events.Envelope{
		ID:             domainEvent.IdempotencyKey,
		Type:           string(domainEvent.EventType),
		Source:         domainEvent.Producer,
		Version:        fmt.Sprintf("%d.0.0", domainEvent.Version),
		Timestamp:      domainEvent.OccurredAt,
		IdempotencyKey: domainEvent.IdempotencyKey,
		TenantID:       domainEvent.TenantID.String(),
		WorkflowID:     domainEvent.WorkflowID,
		RunID:          domainEvent.RunID,
		Payload:        domainEvent.Payload,
	}
}
