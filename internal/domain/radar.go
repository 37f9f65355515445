package domain

import (
	"math"
	"sort"
	"strings"
)

// DefaultMaxAxes is the default ceiling on radar chart axes.
const DefaultMaxAxes = 10

// lowVarianceFraction is the relative deviation from the mean below which an
// axis is considered low-variance and eligible for grouping.
const lowVarianceFraction = 0.2

// otherDomainsAxisID identifies the aggregate axis that folds low-variance
// domains together.
const otherDomainsAxisID = "other_domains"

// RadarAxis is one axis of a radar chart. A grouped axis aggregates several
// low-variance domains: its value is the arithmetic mean of the grouped
// members and GroupedMembers lists their ids, so no domain's contribution
// disappears from the chart.
type RadarAxis struct {
	ID             string   `json:"id"`
	Label          string   `json:"label"`
	Value          float64  `json:"value"`
	Max            float64  `json:"max"`
	GroupedMembers []string `json:"grouped_members,omitempty"`
}

// ReduceAxes prepares a domain-value map for bounded-size radar
// visualization. When the number of positive-valued entries fits within
// maxAxes, every entry becomes its own axis, sorted by label. Otherwise
// entries are partitioned by deviation from the mean: high-variance entries
// keep individual axes while the rest are folded into a single
// "Other Domains" axis carrying their mean and member ids.
//
// The output never exceeds maxAxes. When the high-variance axes alone would
// exceed the cap, they are truncated by ascending deviation before the
// aggregate axis is ever dropped, since the aggregate is the only axis
// representing the low-variance group. A non-positive maxAxes falls back to
// DefaultMaxAxes.
func ReduceAxes(values map[string]float64, maxValue float64, maxAxes int) []RadarAxis {
	if maxAxes <= 0 {
		maxAxes = DefaultMaxAxes
	}

	ids := make([]string, 0, len(values))
	for id, v := range values {
		if v > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	if len(ids) == 0 {
		return []RadarAxis{}
	}

	if len(ids) <= maxAxes {
		axes := make([]RadarAxis, 0, len(ids))
		for _, id := range ids {
			axes = append(axes, RadarAxis{
				ID:    id,
				Label: humanizeIdentifier(id),
				Value: values[id],
				Max:   maxValue,
			})
		}
		sortAxesByLabel(axes)
		return axes
	}

	var sum float64
	for _, id := range ids {
		sum += values[id]
	}
	mean := sum / float64(len(ids))

	var highVariance, lowVariance []string
	for _, id := range ids {
		if math.Abs(values[id]-mean) > lowVarianceFraction*mean {
			highVariance = append(highVariance, id)
		} else {
			lowVariance = append(lowVariance, id)
		}
	}

	// Reserve one slot for the aggregate axis; individual axes are dropped
	// by ascending deviation before the aggregate ever is.
	keep := maxAxes
	if len(lowVariance) > 0 {
		keep = maxAxes - 1
	}
	if len(highVariance) > keep {
		sort.SliceStable(highVariance, func(i, j int) bool {
			di := math.Abs(values[highVariance[i]] - mean)
			dj := math.Abs(values[highVariance[j]] - mean)
			if di != dj {
				return di > dj
			}
			return highVariance[i] < highVariance[j]
		})
		highVariance = highVariance[:keep]
	}

	axes := make([]RadarAxis, 0, len(highVariance)+1)
	for _, id := range highVariance {
		axes = append(axes, RadarAxis{
			ID:    id,
			Label: humanizeIdentifier(id),
			Value: values[id],
			Max:   maxValue,
		})
	}
	sortAxesByLabel(axes)

	if len(lowVariance) > 0 {
		var lowSum float64
		for _, id := range lowVariance {
			lowSum += values[id]
		}
		axes = append(axes, RadarAxis{
			ID:             otherDomainsAxisID,
			Label:          "Other Domains",
			Value:          lowSum / float64(len(lowVariance)),
			Max:            maxValue,
			GroupedMembers: lowVariance,
		})
	}

	if len(axes) > maxAxes {
		axes = axes[:maxAxes]
	}
	return axes
}

// sortAxesByLabel orders axes alphabetically by label, falling back to id
// for identical labels.
func sortAxesByLabel(axes []RadarAxis) {
	sort.SliceStable(axes, func(i, j int) bool {
		if axes[i].Label != axes[j].Label {
			return axes[i].Label < axes[j].Label
		}
		return axes[i].ID < axes[j].ID
	})
}

// humanizeIdentifier turns a snake_case identifier into a display label,
// e.g. "processing_speed" becomes "Processing Speed".
func humanizeIdentifier(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
