// Package domain provides the pure scoring and triangulation core for
// multi-perspective cognitive-profile assessment. It defines the canonical
// cognitive domain enumeration, scale transforms, domain scoring, confidence
// estimation, profile summarization, cross-perspective triangulation, and
// radar-axis reduction.
//
// Scoring Architecture:
//   - Deterministic, side-effect-free transforms over immutable inputs.
//   - Operation contracts validated via struct tags and business rules.
//   - Canonical domain ordering for reproducible derived output.
//   - No I/O, no clock reads, no randomness: identical inputs always
//     produce bit-identical output.
//
// Integration with Assessment Pipelines:
//   - ScoreAssessment operation: raw responses into an AssessmentProfile
//   - TriangulateProfiles operation: two profiles into a TriangulationReport
//   - ReduceRadarAxes operation: bounded axis set for visualization
package domain

import "sort"

// Domain identifies one facet of a cognitive or learning profile.
// Domains are immutable reference data drawn from a fixed enumerated set;
// they are never created or destroyed at runtime.
type Domain string

// The six cognitive domains measured by assessments.
const (
	DomainProcessingSpeed    Domain = "processing_speed"
	DomainWorkingMemory      Domain = "working_memory"
	DomainAttentionFocus     Domain = "attention_focus"
	DomainVisualProcessing   Domain = "visual_processing"
	DomainAuditoryProcessing Domain = "auditory_processing"
	DomainLogicalReasoning   Domain = "logical_reasoning"
)

// DomainInfo carries display metadata for a cognitive domain.
// Keeping metadata in one table keyed by the enumeration replaces the
// string-keyed lookup maps scattered across the original callers.
type DomainInfo struct {
	Label       string
	Description string
}

// domainTable is the single source of domain metadata.
var domainTable = map[Domain]DomainInfo{
	DomainProcessingSpeed:    {Label: "Processing Speed", Description: "How quickly information is taken in and acted on"},
	DomainWorkingMemory:      {Label: "Working Memory", Description: "Holding and manipulating information over short periods"},
	DomainAttentionFocus:     {Label: "Attention & Focus", Description: "Sustaining attention and resisting distraction"},
	DomainVisualProcessing:   {Label: "Visual Processing", Description: "Making sense of visual and spatial information"},
	DomainAuditoryProcessing: {Label: "Auditory Processing", Description: "Making sense of spoken information and sound"},
	DomainLogicalReasoning:   {Label: "Logical Reasoning", Description: "Pattern recognition and step-by-step problem solving"},
}

// canonicalOrder fixes the deterministic ordering used for every derived
// per-domain collection. Derived output never depends on map iteration or
// insertion order.
var canonicalOrder = []Domain{
	DomainProcessingSpeed,
	DomainWorkingMemory,
	DomainAttentionFocus,
	DomainVisualProcessing,
	DomainAuditoryProcessing,
	DomainLogicalReasoning,
}

// AllDomains returns the canonical domain set in its fixed order.
// Returns a fresh copy to prevent mutation of the reference data.
func AllDomains() []Domain {
	out := make([]Domain, len(canonicalOrder))
	copy(out, canonicalOrder)
	return out
}

// IsValidDomain reports whether d is a member of the canonical domain set.
func IsValidDomain(d Domain) bool {
	_, ok := domainTable[d]
	return ok
}

// Info returns the display metadata for the domain.
// Unknown domains fall back to a label derived from the identifier so that
// dynamically sourced axes (e.g. curriculum topics) still render sensibly.
func (d Domain) Info() DomainInfo {
	if info, ok := domainTable[d]; ok {
		return info
	}
	return DomainInfo{Label: humanizeIdentifier(string(d))}
}

// Label returns the human-readable label for the domain.
func (d Domain) Label() string { return d.Info().Label }

// String returns the string representation of the domain identifier.
func (d Domain) String() string { return string(d) }

// sortDomains orders a domain slice canonically: enumerated domains first in
// their fixed order, then any unknown identifiers lexicographically.
func sortDomains(domains []Domain) {
	rank := make(map[Domain]int, len(canonicalOrder))
	for i, d := range canonicalOrder {
		rank[d] = i
	}
	sort.SliceStable(domains, func(i, j int) bool {
		ri, iKnown := rank[domains[i]]
		rj, jKnown := rank[domains[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return domains[i] < domains[j]
		}
	})
}
