package domain

import (
	"errors"
	"fmt"
)

// Response-specific errors.
var (
	// ErrEmptyResponses indicates that an operation requiring at least one
	// response received none.
	ErrEmptyResponses = errors.New("no responses provided")
)

// Response is one answered assessment question. Responses are created once
// when the question is answered and never mutated.
type Response struct {
	// QuestionID identifies the answered question.
	QuestionID string `json:"question_id" validate:"required"`

	// Domain is the cognitive domain the question measures.
	Domain Domain `json:"domain" validate:"required"`

	// RawValue is the untransformed answer, in [scale.Min, scale.Max].
	RawValue float64 `json:"raw_value"`

	// Reverse marks a reverse-scored item. Fixed at question-authoring time.
	Reverse bool `json:"reverse,omitempty"`

	// ResponseTimeMillis is how long the respondent took to answer.
	// Zero means the response was not timed.
	ResponseTimeMillis int64 `json:"response_time_ms,omitempty" validate:"min=0"`
}

// Validate checks structural integrity of a single response against a scale.
// The domain must belong to the canonical set and the raw value must lie
// within the scale bounds.
func (r *Response) Validate(scale Scale) error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if !IsValidDomain(r.Domain) {
		return fmt.Errorf("response %s: unknown domain %q", r.QuestionID, r.Domain)
	}
	if !scale.Contains(r.RawValue) {
		return fmt.Errorf("response %s: %w: value %v not in [%v, %v]",
			r.QuestionID, ErrValueOutOfRange, r.RawValue, scale.Min, scale.Max)
	}
	return nil
}
