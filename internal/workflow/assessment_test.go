package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"github.com/jermiah/auralearn-sub001/internal/domain"
	"github.com/jermiah/auralearn-sub001/internal/radar"
	"github.com/jermiah/auralearn-sub001/internal/scoring"
	"github.com/jermiah/auralearn-sub001/internal/triangulation"
	pkgactivity "github.com/jermiah/auralearn-sub001/pkg/activity"
)

func newTestEnv(t *testing.T) *testsuite.TestWorkflowEnvironment {
	t.Helper()
	testSuite := &testsuite.WorkflowTestSuite{}
	env := testSuite.NewTestWorkflowEnvironment()

	base := pkgactivity.NewBaseActivities(nil)
	env.RegisterWorkflow(AssessmentWorkflow)
	env.RegisterActivity(scoring.NewActivities(base).ScoreAssessment)
	env.RegisterActivity(triangulation.NewActivities(base).TriangulateProfiles)
	env.RegisterActivity(radar.NewActivities(base).ReduceRadarAxes)
	return env
}

func likertResponses(prefix string, values map[domain.Domain]float64) []domain.Response {
	responses := make([]domain.Response, 0, len(values))
	for _, d := range domain.AllDomains() {
		v, ok := values[d]
		if !ok {
			continue
		}
		responses = append(responses, domain.Response{
			QuestionID: prefix + "-" + string(d),
			Domain:     d,
			RawValue:   v,
		})
	}
	return responses
}

func createValidAssessmentRequest() domain.AssessmentRequest {
	return domain.AssessmentRequest{
		SubjectID:    "subject-1",
		Scale:        domain.LikertScale(),
		SelfSourceID: "self-1",
		SelfResponses: likertResponses("self", map[domain.Domain]float64{
			domain.DomainProcessingSpeed: 4,
			domain.DomainWorkingMemory:   5,
			domain.DomainAttentionFocus:  3,
		}),
		ObserverSourceID: "observer-1",
		ObserverResponses: likertResponses("observer", map[domain.Domain]float64{
			domain.DomainProcessingSpeed: 4,
			domain.DomainWorkingMemory:   1,
			domain.DomainAttentionFocus:  3,
		}),
		ExternalLabel: "logical_learner",
	}
}

func TestAssessmentWorkflow(t *testing.T) {
	t.Run("both perspectives produce a full report", func(t *testing.T) {
		env := newTestEnv(t)
		defer env.AssertExpectations(t)

		env.ExecuteWorkflow(AssessmentWorkflow, createValidAssessmentRequest())

		require.True(t, env.IsWorkflowCompleted(), "workflow should complete")
		require.NoError(t, env.GetWorkflowError())

		var report domain.TriangulationReport
		require.NoError(t, env.GetWorkflowResult(&report))

		assert.Equal(t, "subject-1", report.SubjectID)
		assert.Equal(t, "logical_learner", report.ExternalLabel)
		require.NotNil(t, report.ProfileA)
		require.NotNil(t, report.ProfileB)
		assert.Equal(t, domain.PerspectiveStudent, report.ProfileA.Perspective)
		assert.Equal(t, domain.PerspectiveParent, report.ProfileB.Perspective)
		assert.Equal(t, "self-1", report.ProfileA.SourceID)
		assert.Equal(t, "observer-1", report.ProfileB.SourceID)

		assert.Len(t, report.Comparisons, 3)
		require.Len(t, report.Discrepancies, 1)
		assert.Equal(t, domain.DomainWorkingMemory, report.Discrepancies[0].Domain)
		// Mean difference (0+4+0)/3 on range 4: 1 - (4/3)/4 = 2/3.
		assert.InDelta(t, 2.0/3.0, report.TriangulationScore, 1e-9)
	})

	t.Run("self-report only compares against the zero convention", func(t *testing.T) {
		env := newTestEnv(t)
		defer env.AssertExpectations(t)

		req := createValidAssessmentRequest()
		req.ObserverSourceID = ""
		req.ObserverResponses = nil

		env.ExecuteWorkflow(AssessmentWorkflow, req)

		require.True(t, env.IsWorkflowCompleted())
		require.NoError(t, env.GetWorkflowError())

		var report domain.TriangulationReport
		require.NoError(t, env.GetWorkflowResult(&report))

		require.NotNil(t, report.ProfileA)
		assert.Nil(t, report.ProfileB)
		assert.Len(t, report.Comparisons, 3)
		for _, c := range report.Comparisons {
			assert.InDelta(t, 0.0, c.ScoreB, 1e-9)
		}
	})

	t.Run("missing source id falls back to a derived one", func(t *testing.T) {
		env := newTestEnv(t)
		defer env.AssertExpectations(t)

		req := createValidAssessmentRequest()
		req.SelfSourceID = ""

		env.ExecuteWorkflow(AssessmentWorkflow, req)

		require.True(t, env.IsWorkflowCompleted())
		require.NoError(t, env.GetWorkflowError())

		var report domain.TriangulationReport
		require.NoError(t, env.GetWorkflowResult(&report))
		assert.Equal(t, "subject-1-student", report.ProfileA.SourceID)
	})

	t.Run("invalid request fails validation", func(t *testing.T) {
		env := newTestEnv(t)
		defer env.AssertExpectations(t)

		env.ExecuteWorkflow(AssessmentWorkflow, domain.AssessmentRequest{})

		require.True(t, env.IsWorkflowCompleted())
		err := env.GetWorkflowError()
		require.Error(t, err)

		var appErr *temporal.ApplicationError
		require.ErrorAs(t, err, &appErr, "error should be ApplicationError")
		assert.Equal(t, "Validation", appErr.Type())
		assert.Contains(t, appErr.Error(), "invalid assessment request")
	})

	t.Run("request without any response set fails validation", func(t *testing.T) {
		env := newTestEnv(t)
		defer env.AssertExpectations(t)

		req := domain.AssessmentRequest{
			SubjectID: "subject-1",
			Scale:     domain.LikertScale(),
		}
		env.ExecuteWorkflow(AssessmentWorkflow, req)

		require.True(t, env.IsWorkflowCompleted())
		err := env.GetWorkflowError()
		require.Error(t, err)

		var appErr *temporal.ApplicationError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Validation", appErr.Type())
	})

	t.Run("out-of-range response fails the scoring activity", func(t *testing.T) {
		env := newTestEnv(t)
		defer env.AssertExpectations(t)

		req := createValidAssessmentRequest()
		req.SelfResponses[0].RawValue = 42

		env.ExecuteWorkflow(AssessmentWorkflow, req)

		require.True(t, env.IsWorkflowCompleted())
		err := env.GetWorkflowError()
		require.Error(t, err)

		var appErr *temporal.ApplicationError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Error(), "response scoring failed")
	})

	t.Run("mismatched response domain sets surface as an error", func(t *testing.T) {
		env := newTestEnv(t)
		defer env.AssertExpectations(t)

		req := createValidAssessmentRequest()
		req.ObserverResponses = likertResponses("observer", map[domain.Domain]float64{
			domain.DomainLogicalReasoning: 3,
		})

		env.ExecuteWorkflow(AssessmentWorkflow, req)

		require.True(t, env.IsWorkflowCompleted())
		err := env.GetWorkflowError()
		require.Error(t, err)

		var appErr *temporal.ApplicationError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Error(), "triangulation failed")
	})
}

// Multiple executions with identical input must produce identical reports.
func TestAssessmentWorkflowDeterminism(t *testing.T) {
	req := createValidAssessmentRequest()

	var first domain.TriangulationReport
	for i := 0; i < 3; i++ {
		env := newTestEnv(t)

		env.ExecuteWorkflow(AssessmentWorkflow, req)
		require.True(t, env.IsWorkflowCompleted(), "workflow should complete on attempt %d", i+1)
		require.NoError(t, env.GetWorkflowError())

		var report domain.TriangulationReport
		require.NoError(t, env.GetWorkflowResult(&report))

		if i == 0 {
			first = report
			continue
		}
		assert.Equal(t, first, report, "report should be identical on attempt %d", i+1)
	}
}
