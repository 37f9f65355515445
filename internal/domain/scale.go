package domain

import (
	"errors"
	"fmt"
)

// Scale-specific errors returned by transform operations.
var (
	// ErrInvalidScale indicates that a scale's bounds are inverted or degenerate.
	ErrInvalidScale = errors.New("invalid scale bounds")

	// ErrValueOutOfRange indicates a raw response value outside the scale bounds.
	// Out-of-range input is rejected rather than clamped so upstream
	// data-quality issues are never masked.
	ErrValueOutOfRange = errors.New("raw value outside scale bounds")
)

// nativeScaleRange is the span of the native 1-5 Likert scale on which the
// agreement thresholds and the triangulation score are defined. Thresholds
// for other scales are rescaled proportionally against this span.
const nativeScaleRange = 4.0

// Scale describes the closed numeric range of an assessment instrument.
// The original system mixed 1-5 and 0-100 scales across call sites with an
// implicit max; every transform here takes the scale explicitly.
type Scale struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// LikertScale is the default five-point response scale.
func LikertScale() Scale { return Scale{Min: 1, Max: 5} }

// PercentScale is the 0-100 mastery scale used by academic assessments.
func PercentScale() Scale { return Scale{Min: 0, Max: 100} }

// Validate checks that the scale has a positive span.
func (s Scale) Validate() error {
	if s.Max <= s.Min {
		return fmt.Errorf("%w: min=%v max=%v", ErrInvalidScale, s.Min, s.Max)
	}
	return nil
}

// Range returns the span of the scale.
func (s Scale) Range() float64 { return s.Max - s.Min }

// Contains reports whether v lies within the scale bounds.
func (s Scale) Contains(v float64) bool { return v >= s.Min && v <= s.Max }

// rescaleNative converts a threshold defined on the native 1-5 scale into an
// absolute value on this scale.
func (s Scale) rescaleNative(threshold float64) float64 {
	return threshold * s.Range() / nativeScaleRange
}

// fractionOfMax returns the given fraction of the scale ceiling. Band and
// strength cut-offs are fractions of the maximum (4-of-5 on Likert, 80-of-100
// on percent).
func (s Scale) fractionOfMax(fraction float64) float64 {
	return fraction * s.Max
}

// TransformResponse applies reverse scoring to a single raw response.
// For reverse-scored items a high raw answer indicates a low trait value, so
// the value is flipped within the scale: min + max - raw. Non-reverse items
// pass through unchanged. The function is total for raw in [min, max];
// out-of-range input returns ErrValueOutOfRange.
func TransformResponse(raw float64, reverse bool, scale Scale) (float64, error) {
	if err := scale.Validate(); err != nil {
		return 0, err
	}
	if !scale.Contains(raw) {
		return 0, fmt.Errorf("%w: value %v not in [%v, %v]", ErrValueOutOfRange, raw, scale.Min, scale.Max)
	}
	if reverse {
		return scale.Min + scale.Max - raw, nil
	}
	return raw, nil
}
