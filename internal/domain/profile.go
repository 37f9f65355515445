package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Profile-specific errors.
var (
	// ErrEmptyDomainScores indicates that a profile summary was requested for
	// a vector with no measured domains.
	ErrEmptyDomainScores = errors.New("no domain scores to summarize")
)

// Perspective identifies which observer produced an assessment profile.
type Perspective string

// The two observer perspectives triangulated against each other.
const (
	// PerspectiveStudent is the subject's self-report.
	PerspectiveStudent Perspective = "student"

	// PerspectiveParent is the external-observer report.
	PerspectiveParent Perspective = "parent"
)

// Band is the qualitative bucket for an overall profile score.
type Band string

// Band values ordered from strongest to weakest.
const (
	BandStrong       Band = "strong"
	BandGood         Band = "good"
	BandDeveloping   Band = "developing"
	BandNeedsSupport Band = "needs support"
)

// Band cut-offs and domain classification thresholds, expressed as fractions
// of the scale ceiling (4/3/2 on a 1-5 scale, 80/60/40 on 0-100).
const (
	bandStrongFraction     = 0.8
	bandGoodFraction       = 0.6
	bandDevelopingFraction = 0.4

	strengthFraction = 0.8 // strengths: score >= 0.8 * max
	supportFraction  = 0.5 // needs support: score < 0.5 * max (2.5 on 1-5)
)

// AssessmentProfile is one observer's complete domain-score summary for one
// assessment instance. Profiles are immutable once computed; a repeat
// assessment supersedes rather than mutates.
type AssessmentProfile struct {
	// SourceID identifies the assessment instance that produced this profile.
	// Attached by the caller, not by SummarizeProfile.
	SourceID string `json:"source_id,omitempty"`

	// Perspective records which observer produced the profile.
	Perspective Perspective `json:"perspective,omitempty"`

	// DomainScores holds the per-domain averages. Absent domains are
	// unmeasured.
	DomainScores DomainScores `json:"domain_scores" validate:"required,min=1"`

	// OverallScore is the mean of all measured domain scores.
	OverallScore float64 `json:"overall_score"`

	// Band is the qualitative bucket derived from OverallScore.
	Band Band `json:"band" validate:"required"`

	// Confidence is the behavioral-plausibility signal in [0.3, 1.0].
	// Attached by the caller from EstimateConfidence.
	Confidence float64 `json:"confidence,omitempty" validate:"omitempty,min=0.3,max=1"`

	// Strengths lists domains at or above the strength threshold, in
	// canonical order.
	Strengths []Domain `json:"strengths"`

	// AreasForSupport lists domains below the support threshold, in
	// canonical order.
	AreasForSupport []Domain `json:"areas_for_support"`

	// SummaryText is a short deterministic description of the profile.
	SummaryText string `json:"summary_text,omitempty"`
}

// Validate checks structural integrity of the profile.
func (p *AssessmentProfile) Validate() error { return validate.Struct(p) }

// bandFor buckets an overall score on the given scale.
func bandFor(score float64, scale Scale) Band {
	switch {
	case score >= scale.fractionOfMax(bandStrongFraction):
		return BandStrong
	case score >= scale.fractionOfMax(bandGoodFraction):
		return BandGood
	case score >= scale.fractionOfMax(bandDevelopingFraction):
		return BandDeveloping
	default:
		return BandNeedsSupport
	}
}

// scoreBucketLabel is the qualitative label attached to one side of a
// discrepancy, bucketed at 4/3/2 on the native 1-5 scale.
func scoreBucketLabel(score float64, scale Scale) string {
	switch {
	case score >= scale.fractionOfMax(0.8):
		return "Strong/High"
	case score >= scale.fractionOfMax(0.6):
		return "Average/Moderate"
	case score >= scale.fractionOfMax(0.4):
		return "Below Average"
	default:
		return "Needs Support"
	}
}

// SummarizeProfile derives an overall score, qualitative band, and the
// strength and needs-support domain sets from a domain-score vector.
// Unmeasured domains are excluded throughout: they contribute to neither the
// overall mean nor either domain set. SourceID, Perspective, and Confidence
// are left for the caller to attach from context.
func SummarizeProfile(scores DomainScores, scale Scale) (*AssessmentProfile, error) {
	if err := scale.Validate(); err != nil {
		return nil, err
	}
	if len(scores) == 0 {
		return nil, ErrEmptyDomainScores
	}

	var sum float64
	strengths := make([]Domain, 0, len(scores))
	support := make([]Domain, 0, len(scores))
	for _, d := range scores.Domains() {
		score := scores[d]
		sum += score
		if score >= scale.fractionOfMax(strengthFraction) {
			strengths = append(strengths, d)
		}
		if score < scale.fractionOfMax(supportFraction) {
			support = append(support, d)
		}
	}

	overall := sum / float64(len(scores))
	band := bandFor(overall, scale)

	profile := &AssessmentProfile{
		DomainScores:    scores,
		OverallScore:    overall,
		Band:            band,
		Strengths:       strengths,
		AreasForSupport: support,
		SummaryText:     summaryText(band, strengths, support, len(scores)),
	}
	return profile, nil
}

// summaryText builds the deterministic one-line profile description.
func summaryText(band Band, strengths, support []Domain, measured int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Overall profile is %s across %d measured domains.", band, measured)
	if len(strengths) > 0 {
		fmt.Fprintf(&b, " Strengths: %s.", joinDomainLabels(strengths))
	}
	if len(support) > 0 {
		fmt.Fprintf(&b, " Areas needing support: %s.", joinDomainLabels(support))
	}
	return b.String()
}

// joinDomainLabels renders domain labels as a comma-separated list.
func joinDomainLabels(domains []Domain) string {
	labels := make([]string, len(domains))
	for i, d := range domains {
		labels[i] = d.Label()
	}
	return strings.Join(labels, ", ")
}
