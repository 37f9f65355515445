// Package worker exposes helpers to register workflows/activities with a
// Temporal worker.
package worker

import (
	sdkworker "go.temporal.io/sdk/worker"

	"github.com/jermiah/auralearn-sub001/internal/radar"
	"github.com/jermiah/auralearn-sub001/internal/scoring"
	"github.com/jermiah/auralearn-sub001/internal/triangulation"
	"github.com/jermiah/auralearn-sub001/internal/workflow"
	"github.com/jermiah/auralearn-sub001/pkg/activity"
	"github.com/jermiah/auralearn-sub001/pkg/events"
)

// RegisterAll registers all workflows and activities with the Temporal
// worker. Must be called once during worker initialization before starting
// the worker; registration is not thread-safe.
//
// Domain-specific activity instances share the base infrastructure for event
// emission and logging.
func RegisterAll(w sdkworker.Worker, sink events.EventSink) {
	if sink == nil {
		sink = events.NewNoOpEventSink()
	}

	base := activity.NewBaseActivities(sink)

	scoringActivities := scoring.NewActivities(base)
	triangulationActivities := triangulation.NewActivities(base)
	radarActivities := radar.NewActivities(base)

	w.RegisterWorkflow(workflow.AssessmentWorkflow)

	w.RegisterActivity(scoringActivities.ScoreAssessment)
	w.RegisterActivity(triangulationActivities.TriangulateProfiles)
	w.RegisterActivity(radarActivities.ReduceRadarAxes)
}
