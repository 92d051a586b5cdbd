package perf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	s := summarize(nil)
	assert.Zero(t, s.Count)
	assert.True(t, math.IsNaN(s.Mean))
	assert.True(t, math.IsNaN(s.Variance))

	s = summarize([]float64{math.NaN(), 4})
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 4.0, s.Mean)
	assert.True(t, math.IsNaN(s.Variance))

	s = summarize([]float64{1, 2, 3, 4})
	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	assert.InDelta(t, 5.0/3.0, s.Variance, 1e-12)
}

func TestMergeSummaries(t *testing.T) {
	tests := []struct {
		name  string
		parts [][]float64
	}{
		{name: "two runs", parts: [][]float64{{1, 2}, {3, 4, 5}}},
		{name: "single sample parts", parts: [][]float64{{1}, {7}, {2}}},
		{name: "empty part ignored", parts: [][]float64{{}, {0.1, 0.4, 0.2}, {0.9}}},
		{name: "uneven", parts: [][]float64{{10, 11, 12, 13, 14, 15}, {1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var all []float64
			summaries := make([]TimingSummary, 0, len(tt.parts))
			for _, p := range tt.parts {
				all = append(all, p...)
				summaries = append(summaries, summarize(p))
			}

			want := summarize(all)
			got := mergeSummaries(summaries)

			assert.Equal(t, want.Count, got.Count)
			assert.InDelta(t, want.Mean, got.Mean, 1e-9)
			assert.InDelta(t, want.Variance, got.Variance, 1e-9)
		})
	}

	t.Run("nothing to merge", func(t *testing.T) {
		got := mergeSummaries([]TimingSummary{emptySummary()})
		assert.Zero(t, got.Count)
		assert.True(t, math.IsNaN(got.Mean))
	})

	t.Run("one sample in total", func(t *testing.T) {
		got := mergeSummaries([]TimingSummary{summarize([]float64{3})})
		assert.Equal(t, 3.0, got.Mean)
		assert.True(t, math.IsNaN(got.Variance))
	})
}
