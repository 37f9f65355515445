package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/jermiah/auralearn-sub001/internal/domain"
	"github.com/jermiah/auralearn-sub001/internal/scoring"
	"github.com/jermiah/auralearn-sub001/internal/triangulation"
)

// AssessmentWorkflow scores the subject's collected response sets and
// triangulates the resulting perspectives into a report.
//
// The pipeline is collect → score → triangulate; collection and persistence
// are collaborator concerns outside this workflow. Each compute step is
// atomic: partial results are never exposed, and a failed step fails the
// workflow rather than producing a degraded report.
func AssessmentWorkflow(
	ctx workflow.Context,
	req domain.AssessmentRequest,
) (*domain.TriangulationReport, error) {
	// Version gate enables safe evolution and backward compatibility.
	const currentVersion = 1
	_ = workflow.GetVersion(ctx, "assessment.v", workflow.DefaultVersion, currentVersion)

	// Validate request early to fail fast on invalid input.
	if err := req.Validate(); err != nil {
		return nil, temporal.NewNonRetryableApplicationError(
			"invalid assessment request",
			"Validation",
			err,
		)
	}

	// The scoring activities are deterministic and effectively instantaneous;
	// retries only cover infrastructure failures.
	ao := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)

	var (
		scoringActs       *scoring.Activities
		triangulationActs *triangulation.Activities
	)

	var profileA, profileB *domain.AssessmentProfile

	if len(req.SelfResponses) > 0 {
		out, err := scoreOne(ctx, scoringActs, req, domain.PerspectiveStudent)
		if err != nil {
			return nil, err
		}
		profileA = out.Profile
	}

	if len(req.ObserverResponses) > 0 {
		out, err := scoreOne(ctx, scoringActs, req, domain.PerspectiveParent)
		if err != nil {
			return nil, err
		}
		profileB = out.Profile
	}

	triInput := domain.TriangulateInput{
		SubjectID:     req.SubjectID,
		ProfileA:      profileA,
		ProfileB:      profileB,
		ExternalLabel: req.ExternalLabel,
		Scale:         req.Scale,
	}

	var report domain.TriangulationReport
	if err := workflow.ExecuteActivity(
		ctx, triangulationActs.TriangulateProfiles, triInput,
	).Get(ctx, &report); err != nil {
		return nil, err
	}

	return &report, nil
}

// scoreOne executes the scoring activity for one perspective's response set.
func scoreOne(
	ctx workflow.Context,
	acts *scoring.Activities,
	req domain.AssessmentRequest,
	perspective domain.Perspective,
) (*domain.ScoreAssessmentOutput, error) {
	sourceID := req.SelfSourceID
	responses := req.SelfResponses
	if perspective == domain.PerspectiveParent {
		sourceID = req.ObserverSourceID
		responses = req.ObserverResponses
	}
	if sourceID == "" {
		sourceID = req.SubjectID + "-" + string(perspective)
	}

	input := domain.ScoreAssessmentInput{
		SourceID:    sourceID,
		Perspective: perspective,
		Scale:       req.Scale,
		Responses:   responses,
	}

	var out domain.ScoreAssessmentOutput
	if err := workflow.ExecuteActivity(ctx, acts.ScoreAssessment, input).Get(ctx, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
