package domain

import "fmt"

// DomainScores maps each measured domain to its average transformed score.
// A domain with zero responses is explicitly absent from the map, not zero:
// absence means "unmeasured", never "worst score".
type DomainScores map[Domain]float64

// Domains returns the measured domains in canonical order.
func (ds DomainScores) Domains() []Domain {
	out := make([]Domain, 0, len(ds))
	for d := range ds {
		out = append(out, d)
	}
	sortDomains(out)
	return out
}

// SameDomainSet reports whether both vectors measure exactly the same domains.
func (ds DomainScores) SameDomainSet(other DomainScores) bool {
	if len(ds) != len(other) {
		return false
	}
	for d := range ds {
		if _, ok := other[d]; !ok {
			return false
		}
	}
	return true
}

// ScoreDomains aggregates raw responses into one average score per domain.
// Responses are grouped by domain, reverse scoring is applied to each, and
// the arithmetic mean is taken per group. Any out-of-range raw value fails
// the whole computation: partial vectors are never produced.
func ScoreDomains(responses []Response, scale Scale) (DomainScores, error) {
	if err := scale.Validate(); err != nil {
		return nil, err
	}

	sums := make(map[Domain]float64)
	counts := make(map[Domain]int)

	for i := range responses {
		r := &responses[i]
		if err := r.Validate(scale); err != nil {
			return nil, err
		}
		score, err := TransformResponse(r.RawValue, r.Reverse, scale)
		if err != nil {
			return nil, fmt.Errorf("response %s: %w", r.QuestionID, err)
		}
		sums[r.Domain] += score
		counts[r.Domain]++
	}

	scores := make(DomainScores, len(sums))
	for d, sum := range sums {
		scores[d] = sum / float64(counts[d])
	}
	return scores, nil
}
