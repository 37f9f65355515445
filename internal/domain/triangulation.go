package domain

import (
	"errors"
	"fmt"
	"math"
)

// Triangulation-specific errors.
var (
	// ErrNoProfiles indicates that triangulation was attempted with neither
	// profile present.
	ErrNoProfiles = errors.New("triangulation requires at least one profile")

	// ErrDomainSetMismatch indicates that the two profiles disagree on which
	// domains were measured. Conflicting sets are surfaced, never silently
	// unioned or intersected.
	ErrDomainSetMismatch = errors.New("profiles measure different domain sets")
)

// AgreementLevel classifies how close two perspectives' scores are for one
// domain. It is a pure function of the score difference and fixed thresholds,
// never hand-assigned.
type AgreementLevel string

// AgreementLevel values.
const (
	AgreementHigh     AgreementLevel = "high"
	AgreementModerate AgreementLevel = "moderate"
	AgreementLow      AgreementLevel = "low"
)

// Agreement thresholds, defined on the native 1-5 domain scale and rescaled
// proportionally for other scales.
const (
	highAgreementThreshold     = 0.5
	moderateAgreementThreshold = 1.0
)

// agreementLevelFor classifies a score difference on the given scale.
func agreementLevelFor(difference float64, scale Scale) AgreementLevel {
	switch {
	case difference <= scale.rescaleNative(highAgreementThreshold):
		return AgreementHigh
	case difference <= scale.rescaleNative(moderateAgreementThreshold):
		return AgreementModerate
	default:
		return AgreementLow
	}
}

// Candidate explanations attached to a discrepancy, chosen by which side
// reported higher. The two triples are mirror images of each other.
var (
	selfHigherReasons = []string{
		"The student may feel more capable in this area than they appear to others",
		"The behavior may be less visible at home than the student experiences it",
		"The student may be comparing themselves to peers rather than expectations",
	}

	observerHigherReasons = []string{
		"The parent may observe strengths the student does not recognize in themselves",
		"The student may underestimate their own ability in this area",
		"The skill may show more clearly at home than the student perceives",
	}
)

// DomainComparison is the per-domain score pairing between two perspectives.
// Comparisons are derived and ephemeral: recomputed on demand, never the
// source of truth.
type DomainComparison struct {
	Domain         Domain         `json:"domain"`
	ScoreA         float64        `json:"score_a"`
	ScoreB         float64        `json:"score_b"`
	Difference     float64        `json:"difference"`
	AgreementLevel AgreementLevel `json:"agreement_level"`
}

// Discrepancy records a low-agreement domain with qualitative labels for both
// sides and candidate explanations for the gap.
type Discrepancy struct {
	Domain            Domain   `json:"domain"`
	PerspectiveALabel string   `json:"perspective_a_label"`
	PerspectiveBLabel string   `json:"perspective_b_label"`
	Difference        float64  `json:"difference"`
	PossibleReasons   []string `json:"possible_reasons"`
}

// Agreement records a high-agreement domain and how confidently the two
// perspectives share it.
type Agreement struct {
	Domain      Domain  `json:"domain"`
	SharedLabel string  `json:"shared_perspective_label"`
	Confidence  float64 `json:"confidence"`
}

// TriangulationReport is the full cross-perspective analysis for one subject.
type TriangulationReport struct {
	SubjectID          string              `json:"subject_id"`
	ProfileA           *AssessmentProfile  `json:"profile_a,omitempty"`
	ProfileB           *AssessmentProfile  `json:"profile_b,omitempty"`
	ExternalLabel      string              `json:"external_label,omitempty"`
	Comparisons        []DomainComparison  `json:"comparisons"`
	Discrepancies      []Discrepancy       `json:"discrepancies"`
	Agreements         []Agreement         `json:"agreements"`
	TriangulationScore float64             `json:"triangulation_score" validate:"min=0,max=1"`
	Insights           []string            `json:"insights"`
	RecommendedActions []string            `json:"recommended_actions"`
}

// Validate checks structural integrity of the report.
func (r *TriangulationReport) Validate() error { return validate.Struct(r) }

// TriangulateInput is the operation contract for cross-perspective
// triangulation. At least one profile must be present; ExternalLabel is an
// optional third, non-numeric category assigned by a third party.
type TriangulateInput struct {
	// SubjectID identifies the subject both profiles describe.
	SubjectID string `json:"subject_id" validate:"required"`

	// ProfileA is the self-report perspective (student).
	ProfileA *AssessmentProfile `json:"profile_a,omitempty"`

	// ProfileB is the external-observer perspective (parent).
	ProfileB *AssessmentProfile `json:"profile_b,omitempty"`

	// ExternalLabel is an optional teacher-assigned category.
	ExternalLabel string `json:"external_label,omitempty"`

	// Scale is the numeric scale both profiles were scored on.
	Scale Scale `json:"scale"`
}

// Validate checks the triangulation preconditions: a valid scale and at least
// one profile.
func (in *TriangulateInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return err
	}
	if err := in.Scale.Validate(); err != nil {
		return err
	}
	if in.ProfileA == nil && in.ProfileB == nil {
		return ErrNoProfiles
	}
	return nil
}

// comparisonDomains resolves the canonical domain set for a triangulation.
// When both profiles are present they must measure the same domains; a domain
// measured by one profile but not the other is a data-integrity error. When
// only one profile is present, its domain set is used. Domains measured by
// neither profile are excluded entirely rather than compared as zeros.
func comparisonDomains(a, b *AssessmentProfile) ([]Domain, error) {
	switch {
	case a != nil && b != nil:
		if !a.DomainScores.SameDomainSet(b.DomainScores) {
			return nil, fmt.Errorf("%w: %v vs %v",
				ErrDomainSetMismatch, a.DomainScores.Domains(), b.DomainScores.Domains())
		}
		return a.DomainScores.Domains(), nil
	case a != nil:
		return a.DomainScores.Domains(), nil
	default:
		return b.DomainScores.Domains(), nil
	}
}

// scoreOrZero reads a profile's score for a domain, treating a wholly absent
// profile as zero by convention.
func scoreOrZero(p *AssessmentProfile, d Domain) float64 {
	if p == nil {
		return 0
	}
	return p.DomainScores[d]
}

// Triangulate cross-checks two independent profiles of the same subject.
// It produces per-domain comparisons in canonical domain order, classifies
// agreement per domain, derives discrepancy and agreement records with
// candidate explanations, and computes an aggregate triangulation score in
// [0, 1] where larger average disagreement monotonically lowers the score.
//
// Fatal conditions: no profiles (ErrNoProfiles) and conflicting domain sets
// between the two profiles (ErrDomainSetMismatch).
func Triangulate(input TriangulateInput) (*TriangulationReport, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	domains, err := comparisonDomains(input.ProfileA, input.ProfileB)
	if err != nil {
		return nil, err
	}

	scale := input.Scale
	comparisons := make([]DomainComparison, 0, len(domains))
	discrepancies := make([]Discrepancy, 0)
	agreements := make([]Agreement, 0)
	var differenceSum float64

	for _, d := range domains {
		scoreA := scoreOrZero(input.ProfileA, d)
		scoreB := scoreOrZero(input.ProfileB, d)
		difference := math.Abs(scoreA - scoreB)
		level := agreementLevelFor(difference, scale)

		comparisons = append(comparisons, DomainComparison{
			Domain:         d,
			ScoreA:         scoreA,
			ScoreB:         scoreB,
			Difference:     difference,
			AgreementLevel: level,
		})
		differenceSum += difference

		switch level {
		case AgreementLow:
			reasons := observerHigherReasons
			if scoreA > scoreB {
				reasons = selfHigherReasons
			}
			discrepancies = append(discrepancies, Discrepancy{
				Domain:            d,
				PerspectiveALabel: scoreBucketLabel(scoreA, scale),
				PerspectiveBLabel: scoreBucketLabel(scoreB, scale),
				Difference:        difference,
				PossibleReasons:   reasons,
			})
		case AgreementHigh:
			agreements = append(agreements, Agreement{
				Domain:      d,
				SharedLabel: scoreBucketLabel((scoreA+scoreB)/2, scale),
				Confidence:  agreementConfidence(difference, scale),
			})
		}
	}

	report := &TriangulationReport{
		SubjectID:          input.SubjectID,
		ProfileA:           input.ProfileA,
		ProfileB:           input.ProfileB,
		ExternalLabel:      input.ExternalLabel,
		Comparisons:        comparisons,
		Discrepancies:      discrepancies,
		Agreements:         agreements,
		TriangulationScore: triangulationScore(differenceSum, len(domains), scale),
	}
	report.Insights = buildInsights(report, scale)
	report.RecommendedActions = buildRecommendedActions(report)
	return report, nil
}

// agreementConfidence converts a score difference into agreement confidence.
// Defined as 1 - difference on the native 1-5 scale; the difference is
// normalized to the native span for other scales.
func agreementConfidence(difference float64, scale Scale) float64 {
	normalized := difference * nativeScaleRange / scale.Range()
	return 1 - normalized
}

// triangulationScore summarizes overall cross-perspective consistency as
// max(0, 1 - meanDifference/range), a scalar in [0, 1].
func triangulationScore(differenceSum float64, domainCount int, scale Scale) float64 {
	if domainCount == 0 {
		return 0
	}
	mean := differenceSum / float64(domainCount)
	return math.Max(0, 1-mean/scale.Range())
}

// significantDiscrepancyCount is the number of low-agreement domains at which
// the perspectives are considered to diverge significantly.
const significantDiscrepancyCount = 3

// buildInsights derives rule-based narrative insights from the report.
// Insight order is fixed: overall statements first, then per-domain
// confirmations in canonical order, then the external-label note.
func buildInsights(r *TriangulationReport, scale Scale) []string {
	insights := make([]string, 0, 4)

	if len(r.Discrepancies) == 0 {
		insights = append(insights,
			"There is strong agreement between student and parent perspectives, suggesting a consistent picture of the learner.")
	}
	if len(r.Discrepancies) >= significantDiscrepancyCount {
		insights = append(insights, fmt.Sprintf(
			"There are significant differences between perspectives in %d domains; the student may present differently across settings.",
			len(r.Discrepancies)))
	}

	strengthCutoff := scale.fractionOfMax(strengthFraction)
	for _, c := range r.Comparisons {
		if c.AgreementLevel == AgreementHigh && c.ScoreA >= strengthCutoff && c.ScoreB >= strengthCutoff {
			insights = append(insights, fmt.Sprintf(
				"Both perspectives confirm %s as a clear strength.", c.Domain.Label()))
		}
	}

	if r.ExternalLabel != "" {
		insights = append(insights, fmt.Sprintf(
			"The teacher-assigned category %q offers a third perspective to weigh against both reports.",
			r.ExternalLabel))
	}

	return insights
}

// buildRecommendedActions derives rule-based follow-up actions from the
// report: one generic discussion action plus one per discrepancy domain when
// discrepancies exist, and one generic build-on-agreement action when
// agreements exist.
func buildRecommendedActions(r *TriangulationReport) []string {
	actions := make([]string, 0, len(r.Discrepancies)+2)

	if len(r.Discrepancies) > 0 {
		actions = append(actions,
			"Schedule a discussion between teacher and parent to explore the differing perspectives.")
		for _, d := range r.Discrepancies {
			actions = append(actions, fmt.Sprintf(
				"Observe %s across home and classroom settings to understand the differing reports.",
				d.Domain.Label()))
		}
	}
	if len(r.Agreements) > 0 {
		actions = append(actions,
			"Build on the areas of agreement when planning support strategies.")
	}

	return actions
}
