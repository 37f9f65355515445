package domain //nolint:testpackage // Need access to unexported helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeResponse(id string, d Domain, raw float64, reverse bool) Response {
	return Response{QuestionID: id, Domain: d, RawValue: raw, Reverse: reverse}
}

func TestScoreDomains(t *testing.T) {
	t.Run("averages transformed responses per domain", func(t *testing.T) {
		// A reverse-scored 1 counts as 5, so the mean is (5+4+5)/3.
		responses := []Response{
			makeResponse("q1", DomainProcessingSpeed, 5, false),
			makeResponse("q2", DomainProcessingSpeed, 4, false),
			makeResponse("q3", DomainProcessingSpeed, 1, true),
		}

		scores, err := ScoreDomains(responses, LikertScale())
		require.NoError(t, err)
		require.Len(t, scores, 1)
		assert.InDelta(t, 14.0/3.0, scores[DomainProcessingSpeed], 1e-9)
	})

	t.Run("groups responses by domain", func(t *testing.T) {
		responses := []Response{
			makeResponse("q1", DomainWorkingMemory, 2, false),
			makeResponse("q2", DomainWorkingMemory, 4, false),
			makeResponse("q3", DomainAttentionFocus, 5, false),
		}

		scores, err := ScoreDomains(responses, LikertScale())
		require.NoError(t, err)
		require.Len(t, scores, 2)
		assert.InDelta(t, 3.0, scores[DomainWorkingMemory], 1e-9)
		assert.InDelta(t, 5.0, scores[DomainAttentionFocus], 1e-9)
	})

	t.Run("unanswered domains are absent, not zero", func(t *testing.T) {
		responses := []Response{
			makeResponse("q1", DomainLogicalReasoning, 3, false),
		}

		scores, err := ScoreDomains(responses, LikertScale())
		require.NoError(t, err)

		_, measured := scores[DomainProcessingSpeed]
		assert.False(t, measured, "unmeasured domain must not appear in the vector")
		assert.Len(t, scores, 1)
	})

	t.Run("empty response set yields empty vector", func(t *testing.T) {
		scores, err := ScoreDomains(nil, LikertScale())
		require.NoError(t, err)
		assert.Empty(t, scores)
	})

	t.Run("out-of-range value fails the whole computation", func(t *testing.T) {
		responses := []Response{
			makeResponse("q1", DomainWorkingMemory, 3, false),
			makeResponse("q2", DomainWorkingMemory, 9, false),
		}

		scores, err := ScoreDomains(responses, LikertScale())
		require.ErrorIs(t, err, ErrValueOutOfRange)
		assert.Nil(t, scores, "partial vectors must never be produced")
	})

	t.Run("unknown domain is rejected", func(t *testing.T) {
		responses := []Response{
			makeResponse("q1", Domain("handwriting"), 3, false),
		}

		_, err := ScoreDomains(responses, LikertScale())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown domain")
	})

	t.Run("recomputation is deterministic", func(t *testing.T) {
		responses := []Response{
			makeResponse("q1", DomainVisualProcessing, 4, false),
			makeResponse("q2", DomainAuditoryProcessing, 2, true),
			makeResponse("q3", DomainVisualProcessing, 3, false),
		}

		first, err := ScoreDomains(responses, LikertScale())
		require.NoError(t, err)
		second, err := ScoreDomains(responses, LikertScale())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestDomainScores_SameDomainSet(t *testing.T) {
	a := DomainScores{DomainProcessingSpeed: 3, DomainWorkingMemory: 4}
	b := DomainScores{DomainWorkingMemory: 1, DomainProcessingSpeed: 5}
	c := DomainScores{DomainProcessingSpeed: 3, DomainAttentionFocus: 4}

	assert.True(t, a.SameDomainSet(b))
	assert.False(t, a.SameDomainSet(c))
	assert.False(t, a.SameDomainSet(DomainScores{DomainProcessingSpeed: 3}))
}

func TestDomainScores_Domains_CanonicalOrder(t *testing.T) {
	scores := DomainScores{
		DomainLogicalReasoning:   1,
		DomainProcessingSpeed:    2,
		DomainAttentionFocus:     3,
		DomainAuditoryProcessing: 4,
	}

	got := scores.Domains()
	want := []Domain{
		DomainProcessingSpeed,
		DomainAttentionFocus,
		DomainAuditoryProcessing,
		DomainLogicalReasoning,
	}
	assert.Equal(t, want, got)
}
