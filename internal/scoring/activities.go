package scoring

import (
	"context"
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"

	"github.com/jermiah/auralearn-sub001/internal/domain"
	pkgactivity "github.com/jermiah/auralearn-sub001/pkg/activity"
)

// Activities handles scoring-specific Temporal activities for assessment
// evaluation. It wraps the pure domain transforms (domain scoring,
// confidence estimation, profile summarization) with input/output contract
// validation, event emission, and Temporal error classification.
//
// The compute step itself is synchronous, deterministic, and effectively
// instantaneous: retries only make sense for infrastructure failures, never
// for the scoring math, so all domain errors are non-retryable.
type Activities struct {
	pkgactivity.BaseActivities
	events *EventEmitter
}

// NewActivities creates scoring activities with the provided base
// infrastructure for logging and event emission.
func NewActivities(base pkgactivity.BaseActivities) *Activities {
	return &Activities{
		BaseActivities: base,
		events:         NewEventEmitter(base),
	}
}

// ScoreAssessment turns one complete raw response set into an assessment
// profile.
//
// The operation:
//  1. Validates the input contract and scale
//  2. Aggregates responses into per-domain averages with reverse scoring
//  3. Summarizes the vector into overall score, band, and domain sets
//  4. Attaches the behavioral confidence estimate and source identity
//  5. Emits a ProfileScored event for observability
//
// Out-of-range response values fail the whole assessment: partial profiles
// are never produced. All failures are non-retryable application errors
// because the computation is deterministic.
func (a *Activities) ScoreAssessment(
	ctx context.Context,
	input domain.ScoreAssessmentInput,
) (*domain.ScoreAssessmentOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, nonRetryable("ScoreAssessment", err, "invalid input")
	}

	wfCtx := a.GetWorkflowContext(ctx)
	pkgactivity.SafeLog(ctx, "Starting ScoreAssessment activity",
		"workflow_id", wfCtx.WorkflowID,
		"activity_id", wfCtx.ActivityID,
		"source_id", input.SourceID,
		"perspective", input.Perspective,
		"responses", len(input.Responses))

	scores, err := domain.ScoreDomains(input.Responses, input.Scale)
	if err != nil {
		return nil, nonRetryable("ScoreAssessment", err, "response scoring failed")
	}

	profile, err := domain.SummarizeProfile(scores, input.Scale)
	if err != nil {
		return nil, nonRetryable("ScoreAssessment", err, "profile summarization failed")
	}

	profile.SourceID = input.SourceID
	profile.Perspective = input.Perspective
	profile.Confidence = domain.EstimateConfidence(input.Responses)

	output := &domain.ScoreAssessmentOutput{
		Profile:       profile,
		ResponseCount: len(input.Responses),
	}
	if err := output.Validate(); err != nil {
		return nil, nonRetryable("ScoreAssessment", err, "invalid output")
	}

	// Best-effort event emission, never fails the activity.
	clientIdemKey := fmt.Sprintf("scoring-%s-%s", wfCtx.WorkflowID, input.SourceID)
	a.events.EmitProfileScored(ctx, profile, wfCtx, clientIdemKey, time.Now())

	pkgactivity.SafeLog(ctx, "ScoreAssessment completed",
		"source_id", input.SourceID,
		"overall_score", profile.OverallScore,
		"band", profile.Band,
		"confidence", profile.Confidence,
		"domains_measured", len(profile.DomainScores))

	return output, nil
}

// nonRetryable wraps errors as non-retryable Temporal application errors.
// Deterministic computations never benefit from retries.
func nonRetryable(tag string, cause error, msg string) error {
	return temporal.NewNonRetryableApplicationError(msg, tag, cause)
}
