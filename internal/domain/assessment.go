package domain

import "errors"

// Assessment operation errors.
var (
	// ErrNoResponseSets indicates that an assessment request carries neither
	// a self-report nor an observer response set.
	ErrNoResponseSets = errors.New("assessment request requires at least one response set")
)

// ScoreAssessmentInput is the operation contract for scoring one completed
// assessment instance into a profile.
type ScoreAssessmentInput struct {
	// SourceID identifies the assessment instance being scored.
	SourceID string `json:"source_id" validate:"required"`

	// Perspective records which observer answered the assessment.
	Perspective Perspective `json:"perspective" validate:"required,oneof=student parent"`

	// Scale is the response scale of the assessment instrument.
	Scale Scale `json:"scale"`

	// Responses is the complete response set for the instance. Scoring is
	// only performed on complete sets; partial vectors are never computed.
	Responses []Response `json:"responses" validate:"required,min=1,dive"`
}

// Validate checks if the input meets all operation contract requirements.
func (s *ScoreAssessmentInput) Validate() error {
	if err := validate.Struct(s); err != nil {
		return err
	}
	return s.Scale.Validate()
}

// ScoreAssessmentOutput is the result of scoring one assessment instance.
type ScoreAssessmentOutput struct {
	// Profile is the computed assessment profile with confidence attached.
	Profile *AssessmentProfile `json:"profile" validate:"required"`

	// ResponseCount is the number of responses scored.
	ResponseCount int `json:"response_count" validate:"min=1"`
}

// Validate checks if the output meets all operation contract requirements.
func (s *ScoreAssessmentOutput) Validate() error { return validate.Struct(s) }

// ReduceAxesInput is the operation contract for radar axis reduction.
type ReduceAxesInput struct {
	// Values maps domain identifiers to display values. Keys may be any
	// dynamically sourced identifier, not only canonical cognitive domains.
	Values map[string]float64 `json:"values" validate:"required,min=1"`

	// MaxValue is the scale ceiling for display.
	MaxValue float64 `json:"max_value" validate:"gt=0"`

	// MaxAxes caps the output axis count. Non-positive values fall back to
	// DefaultMaxAxes.
	MaxAxes int `json:"max_axes,omitempty"`
}

// Validate checks if the input meets all operation contract requirements.
func (r *ReduceAxesInput) Validate() error { return validate.Struct(r) }

// ReduceAxesOutput is the result of radar axis reduction.
type ReduceAxesOutput struct {
	// Axes is the bounded axis set, individual axes sorted by label with the
	// aggregate axis (if any) last.
	Axes []RadarAxis `json:"axes"`
}

// AssessmentRequest is the workflow contract for scoring one subject's
// assessments and triangulating the perspectives. At least one of the two
// response sets must be present.
type AssessmentRequest struct {
	// SubjectID identifies the assessed subject.
	SubjectID string `json:"subject_id" validate:"required"`

	// Scale is the response scale shared by both assessment instruments.
	Scale Scale `json:"scale"`

	// SelfSourceID identifies the self-report assessment instance.
	SelfSourceID string `json:"self_source_id,omitempty"`

	// SelfResponses is the student's own response set, if collected.
	SelfResponses []Response `json:"self_responses,omitempty" validate:"omitempty,dive"`

	// ObserverSourceID identifies the observer assessment instance.
	ObserverSourceID string `json:"observer_source_id,omitempty"`

	// ObserverResponses is the parent's response set, if collected.
	ObserverResponses []Response `json:"observer_responses,omitempty" validate:"omitempty,dive"`

	// ExternalLabel is an optional teacher-assigned category carried through
	// to the triangulation report.
	ExternalLabel string `json:"external_label,omitempty"`
}

// Validate checks the workflow request preconditions.
func (a *AssessmentRequest) Validate() error {
	if err := validate.Struct(a); err != nil {
		return err
	}
	if err := a.Scale.Validate(); err != nil {
		return err
	}
	if len(a.SelfResponses) == 0 && len(a.ObserverResponses) == 0 {
		return ErrNoResponseSets
	}
	return nil
}
