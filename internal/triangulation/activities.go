package triangulation

import (
	"context"
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"

	"github.com/jermiah/auralearn-sub001/internal/domain"
	pkgactivity "github.com/jermiah/auralearn-sub001/pkg/activity"
)

// Activities handles triangulation-specific Temporal activities.
// It wraps the pure cross-perspective analysis with contract validation,
// event emission, and Temporal error classification.
type Activities struct {
	pkgactivity.BaseActivities
	events *EventEmitter
}

// NewActivities creates triangulation activities with the provided base
// infrastructure for logging and event emission.
func NewActivities(base pkgactivity.BaseActivities) *Activities {
	return &Activities{
		BaseActivities: base,
		events:         NewEventEmitter(base),
	}
}

// TriangulateProfiles cross-checks two perspectives' profiles of the same
// subject into a triangulation report.
//
// The operation:
//  1. Validates the input contract, scale, and profile preconditions
//  2. Runs the pure triangulation analysis in canonical domain order
//  3. Validates the report contract
//  4. Emits a ReportTriangulated event for observability
//
// Missing both profiles and conflicting domain sets between the two profiles
// are data-integrity errors surfaced to the caller as non-retryable
// application errors; they are never silently resolved.
func (a *Activities) TriangulateProfiles(
	ctx context.Context,
	input domain.TriangulateInput,
) (*domain.TriangulationReport, error) {
	if err := input.Validate(); err != nil {
		return nil, nonRetryable("TriangulateProfiles", err, "invalid input")
	}

	wfCtx := a.GetWorkflowContext(ctx)
	pkgactivity.SafeLog(ctx, "Starting TriangulateProfiles activity",
		"workflow_id", wfCtx.WorkflowID,
		"activity_id", wfCtx.ActivityID,
		"subject_id", input.SubjectID,
		"has_profile_a", input.ProfileA != nil,
		"has_profile_b", input.ProfileB != nil,
		"has_external_label", input.ExternalLabel != "")

	report, err := domain.Triangulate(input)
	if err != nil {
		return nil, nonRetryable("TriangulateProfiles", err, "triangulation failed")
	}

	if err := report.Validate(); err != nil {
		return nil, nonRetryable("TriangulateProfiles", err, "invalid report")
	}

	clientIdemKey := fmt.Sprintf("triangulation-%s-%s", wfCtx.WorkflowID, input.SubjectID)
	a.events.EmitReportTriangulated(ctx, report, wfCtx, clientIdemKey, time.Now())

	pkgactivity.SafeLog(ctx, "TriangulateProfiles completed",
		"subject_id", report.SubjectID,
		"triangulation_score", report.TriangulationScore,
		"agreements", len(report.Agreements),
		"discrepancies", len(report.Discrepancies))

	return report, nil
}

// nonRetryable wraps errors as non-retryable Temporal application errors.
func nonRetryable(tag string, cause error, msg string) error {
	return temporal.NewNonRetryableApplicationError(msg, tag, cause)
}
