package perf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScores(t *testing.T) {
	tests := []struct {
		name     string
		counts   [][]int
		accuracy float64
		purity   float64
		ari      float64
		nmi      float64
		vi       float64
	}{
		{
			name:     "perfect",
			counts:   [][]int{{2, 0}, {0, 2}},
			accuracy: 1, purity: 1, ari: 1, nmi: 1, vi: 0,
		},
		{
			name:     "permuted labels",
			counts:   [][]int{{0, 2}, {2, 0}},
			accuracy: 0, purity: 1, ari: 1, nmi: 1, vi: 0,
		},
		{
			name:     "independent",
			counts:   [][]int{{1, 1}, {1, 1}},
			accuracy: 0.5, purity: 0.5, ari: -0.5, nmi: 0, vi: 2,
		},
		{
			name:     "single cluster",
			counts:   [][]int{{3}},
			accuracy: 1, purity: 1, ari: 1, nmi: 1, vi: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustMatrix(t, tt.counts)
			assert.InDelta(t, tt.accuracy, Accuracy(m), 1e-12)
			assert.InDelta(t, tt.purity, Purity(m), 1e-12)
			assert.InDelta(t, tt.ari, AdjustedRandIndex(m), 1e-12)
			assert.InDelta(t, tt.nmi, NormalizedMutualInformation(m), 1e-12)
			assert.InDelta(t, tt.vi, VariationOfInformation(m), 1e-12)
		})
	}
}

func TestScores_EmptyMatrixIsNaN(t *testing.T) {
	m, err := NewContingencyMatrix(2, 2)
	assert.NoError(t, err)

	for name, s := range ClusterScores {
		assert.True(t, math.IsNaN(s(m)), name)
	}
	assert.True(t, math.IsNaN(Accuracy(m)))
}

func TestPurity_Imbalanced(t *testing.T) {
	// predicted cluster 0 is dominated by true cluster 0, cluster 1 by true 1
	m := mustMatrix(t, [][]int{{3, 1}, {0, 4}})
	assert.InDelta(t, 7.0/8.0, Purity(m), 1e-12)
	assert.InDelta(t, 7.0/8.0, Accuracy(m), 1e-12)

	// more predicted clusters than true ones
	m = mustMatrix(t, [][]int{{2, 2, 0}, {0, 0, 4}})
	assert.InDelta(t, 1.0, Purity(m), 1e-12)
}

func TestEntropy(t *testing.T) {
	tests := []struct {
		name   string
		counts []float64
		want   float64
	}{
		{name: "uniform pair", counts: []float64{2, 2}, want: 1},
		{name: "single bucket", counts: []float64{4, 0}, want: 0},
		{name: "skewed", counts: []float64{1, 1, 2}, want: 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, entropy(tt.counts, 4), 1e-12)
		})
	}
}
