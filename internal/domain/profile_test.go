package domain //nolint:testpackage // Need access to unexported helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeProfile(t *testing.T) {
	t.Run("overall score is the mean of measured domains", func(t *testing.T) {
		scores := DomainScores{
			DomainProcessingSpeed: 4,
			DomainWorkingMemory:   2,
			DomainAttentionFocus:  3,
		}

		profile, err := SummarizeProfile(scores, LikertScale())
		require.NoError(t, err)
		assert.InDelta(t, 3.0, profile.OverallScore, 1e-9)
	})

	t.Run("unmeasured domains do not drag the mean down", func(t *testing.T) {
		scores := DomainScores{DomainLogicalReasoning: 5}

		profile, err := SummarizeProfile(scores, LikertScale())
		require.NoError(t, err)
		assert.InDelta(t, 5.0, profile.OverallScore, 1e-9)
		assert.Equal(t, BandStrong, profile.Band)
	})

	t.Run("strengths and support areas in canonical order", func(t *testing.T) {
		scores := DomainScores{
			DomainProcessingSpeed:    4.5,
			DomainWorkingMemory:      2.0,
			DomainAttentionFocus:     4.0,
			DomainVisualProcessing:   3.0,
			DomainAuditoryProcessing: 1.5,
		}

		profile, err := SummarizeProfile(scores, LikertScale())
		require.NoError(t, err)
		assert.Equal(t, []Domain{DomainProcessingSpeed, DomainAttentionFocus}, profile.Strengths)
		assert.Equal(t, []Domain{DomainWorkingMemory, DomainAuditoryProcessing}, profile.AreasForSupport)
	})

	t.Run("strength threshold is inclusive, support threshold exclusive", func(t *testing.T) {
		scores := DomainScores{
			DomainProcessingSpeed: 4.0, // exactly 0.8 * 5
			DomainWorkingMemory:   2.5, // exactly 0.5 * 5
		}

		profile, err := SummarizeProfile(scores, LikertScale())
		require.NoError(t, err)
		assert.Contains(t, profile.Strengths, DomainProcessingSpeed)
		assert.NotContains(t, profile.AreasForSupport, DomainWorkingMemory)
	})

	t.Run("empty vector is rejected", func(t *testing.T) {
		_, err := SummarizeProfile(DomainScores{}, LikertScale())
		require.ErrorIs(t, err, ErrEmptyDomainScores)
	})

	t.Run("invalid scale is rejected", func(t *testing.T) {
		scores := DomainScores{DomainProcessingSpeed: 3}
		_, err := SummarizeProfile(scores, Scale{Min: 5, Max: 1})
		require.ErrorIs(t, err, ErrInvalidScale)
	})

	t.Run("summary text names strengths and support areas", func(t *testing.T) {
		scores := DomainScores{
			DomainProcessingSpeed: 4.5,
			DomainWorkingMemory:   2.0,
		}

		profile, err := SummarizeProfile(scores, LikertScale())
		require.NoError(t, err)
		assert.Contains(t, profile.SummaryText, "Processing Speed")
		assert.Contains(t, profile.SummaryText, "Working Memory")
		assert.Contains(t, profile.SummaryText, "2 measured domains")
	})
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		scale Scale
		want  Band
	}{
		{"strong at cut-off", 4.0, LikertScale(), BandStrong},
		{"good just under strong", 3.99, LikertScale(), BandGood},
		{"good at cut-off", 3.0, LikertScale(), BandGood},
		{"developing at cut-off", 2.0, LikertScale(), BandDeveloping},
		{"needs support below developing", 1.99, LikertScale(), BandNeedsSupport},
		{"strong on percent scale", 85, PercentScale(), BandStrong},
		{"good on percent scale", 60, PercentScale(), BandGood},
		{"developing on percent scale", 45, PercentScale(), BandDeveloping},
		{"needs support on percent scale", 30, PercentScale(), BandNeedsSupport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bandFor(tt.score, tt.scale))
		})
	}
}

func TestScoreBucketLabel(t *testing.T) {
	scale := LikertScale()
	assert.Equal(t, "Strong/High", scoreBucketLabel(4.2, scale))
	assert.Equal(t, "Average/Moderate", scoreBucketLabel(3.0, scale))
	assert.Equal(t, "Below Average", scoreBucketLabel(2.0, scale))
	assert.Equal(t, "Needs Support", scoreBucketLabel(1.9, scale))
}

func TestAssessmentProfile_Validate(t *testing.T) {
	profile := &AssessmentProfile{
		DomainScores: DomainScores{DomainProcessingSpeed: 3},
		OverallScore: 3,
		Band:         BandGood,
		Confidence:   0.7,
	}
	require.NoError(t, profile.Validate())

	profile.Confidence = 0.2
	assert.Error(t, profile.Validate(), "confidence below the floor must fail validation")

	profile.Confidence = 0.7
	profile.DomainScores = nil
	assert.Error(t, profile.Validate())
}
