package domain

// Confidence bounds and behavioral-signal adjustments. Confidence is a
// behavioral-plausibility signal, not a statistical p-value: it flags
// profiles that likely warrant a repeat assessment.
const (
	// ConfidenceBase is the starting confidence before any adjustment.
	ConfidenceBase = 0.7

	// MinConfidence is the floor of the confidence range.
	MinConfidence = 0.3

	// MaxConfidence is the ceiling of the confidence range.
	MaxConfidence = 1.0

	// RushedResponseThresholdMillis marks an average response time that
	// suggests inattentive or guessed answers.
	RushedResponseThresholdMillis = 2000

	// DisengagedResponseThresholdMillis marks an average response time that
	// suggests disengagement or difficulty.
	DisengagedResponseThresholdMillis = 60000

	rushedPenalty         = 0.15
	disengagedPenalty     = 0.10
	flatResponsePenalty   = 0.20
	variedResponseBonus   = 0.10
	variedDistinctMinimum = 4
)

// EstimateConfidence derives a scalar confidence for a response set from
// response-time and response-variance signals. The adjustments are purely
// additive around ConfidenceBase and order-independent:
//
//   - average timed response under 2s: likely guessing, subtract 0.15
//   - average timed response over 60s: possible disengagement, subtract 0.10
//   - a single distinct raw value: non-differentiated responding, subtract 0.20
//   - four or more distinct raw values: thoughtful variance, add 0.10
//
// The result is clamped to [MinConfidence, MaxConfidence] regardless of the
// input combination. An empty response set yields the clamped base value.
func EstimateConfidence(responses []Response) float64 {
	confidence := ConfidenceBase

	var timedTotal, timedCount int64
	distinct := make(map[float64]struct{}, len(responses))
	for i := range responses {
		if responses[i].ResponseTimeMillis > 0 {
			timedTotal += responses[i].ResponseTimeMillis
			timedCount++
		}
		distinct[responses[i].RawValue] = struct{}{}
	}

	if timedCount > 0 {
		avg := float64(timedTotal) / float64(timedCount)
		if avg < RushedResponseThresholdMillis {
			confidence -= rushedPenalty
		}
		if avg > DisengagedResponseThresholdMillis {
			confidence -= disengagedPenalty
		}
	}

	if len(responses) > 0 {
		if len(distinct) == 1 {
			confidence -= flatResponsePenalty
		}
		if len(distinct) >= variedDistinctMinimum {
			confidence += variedResponseBonus
		}
	}

	return clampConfidence(confidence)
}

// clampConfidence bounds a confidence value to [MinConfidence, MaxConfidence].
func clampConfidence(c float64) float64 {
	if c < MinConfidence {
		return MinConfidence
	}
	if c > MaxConfidence {
		return MaxConfidence
	}
	return c
}
