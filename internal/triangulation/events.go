// Package triangulation implements the Temporal activity that cross-checks
// two observer profiles of the same subject into an agreement/discrepancy
// report with an aggregate triangulation score.
package triangulation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jermiah/auralearn-sub001/internal/domain"
	"github.com/jermiah/auralearn-sub001/pkg/activity"
	"github.com/jermiah/auralearn-sub001/pkg/events"
)

// EventEmitter handles domain event emission for triangulation operations.
// All emission is best-effort: failures are logged without affecting the
// core activity.
type EventEmitter struct{ base activity.BaseActivities }

// NewEventEmitter creates an EventEmitter with base activity infrastructure.
func NewEventEmitter(base activity.BaseActivities) *EventEmitter {
	return &EventEmitter{base: base}
}

// EmitReportTriangulated emits a ReportTriangulated event for a report.
func (e *EventEmitter) EmitReportTriangulated(
	ctx context.Context,
	report *domain.TriangulationReport,
	wfCtx activity.WorkflowContext,
	clientIdemKey string,
	occurredAt time.Time,
) {
	tenantID, err := uuid.Parse(wfCtx.TenantID)
	if err != nil {
		activity.SafeLogError(ctx, "Failed to parse tenant ID for ReportTriangulated event",
			"tenant_id", wfCtx.TenantID,
			"error", err)
		return
	}

	domainEvent, err := domain.NewReportTriangulatedEvent(
		tenantID,
		wfCtx.WorkflowID,
		wfCtx.RunID,
		occurredAt,
		report,
		clientIdemKey,
	)
	if err != nil {
		activity.SafeLogError(ctx, "Failed to create ReportTriangulated event",
			"subject_id", report.SubjectID,
			"error", err)
		return
	}

	e.base.EmitEventSafe(ctx, toEnvelope(domainEvent), "ReportTriangulated")
}

// toEnvelope converts a domain.EventEnvelope to the generic events.Envelope.
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
