// Package radar implements the Temporal activity that reduces a domain-value
// map into a bounded set of radar chart axes for visualization consumers.
package radar

import (
	"context"

	"go.temporal.io/sdk/temporal"

	"github.com/jermiah/auralearn-sub001/internal/domain"
	pkgactivity "github.com/jermiah/auralearn-sub001/pkg/activity"
)

// Activities handles radar-specific Temporal activities. The axis reducer is
// an independent consumer of any domain-score vector, profile-derived or raw,
// so it carries no event emission of its own.
type Activities struct {
	pkgactivity.BaseActivities
}

// NewActivities creates radar activities with the provided base
// infrastructure.
func NewActivities(base pkgactivity.BaseActivities) *Activities {
	return &Activities{BaseActivities: base}
}

// ReduceRadarAxes prepares a domain-value map for bounded-size radar
// visualization. Entries under the cap become individual axes; otherwise
// low-variance entries are statistically grouped into a single aggregate
// axis. The output axis count never exceeds the requested cap.
func (a *Activities) ReduceRadarAxes(
	ctx context.Context,
	input domain.ReduceAxesInput,
) (*domain.ReduceAxesOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, nonRetryable("ReduceRadarAxes", err, "invalid input")
	}

	wfCtx := a.GetWorkflowContext(ctx)
	pkgactivity.SafeLog(ctx, "Starting ReduceRadarAxes activity",
		"workflow_id", wfCtx.WorkflowID,
		"activity_id", wfCtx.ActivityID,
		"values", len(input.Values),
		"max_axes", input.MaxAxes)

	axes := domain.ReduceAxes(input.Values, input.MaxValue, input.MaxAxes)

	pkgactivity.SafeLog(ctx, "ReduceRadarAxes completed",
		"axes", len(axes))

	return &domain.ReduceAxesOutput{Axes: axes}, nil
}

// nonRetryable wraps errors as non-retryable Temporal application errors.
func nonRetryable(tag string, cause error, msg string) error {
	return temporal.NewNonRetryableApplicationError(msg, tag, cause)
}
