package perf

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustClasses(t *testing.T, labels ...string) *ClassIndex {
	t.Helper()
	c, err := NewClassIndex(labels)
	require.NoError(t, err)
	return c
}

// resultsFromCounts expands counts[i][j] into trajectories with true label
// trueLabels[i] and predicted label predLabels[j].
func resultsFromCounts(counts [][]int, trueLabels, predLabels []string) []Result {
	var out []Result
	n := 0
	for i, row := range counts {
		for j, c := range row {
			for k := 0; k < c; k++ {
				out = append(out, Trajectory{
					ID:        fmt.Sprintf("traj-%03d", n),
					True:      trueLabels[i],
					Predicted: predLabels[j],
				})
				n++
			}
		}
	}
	return out
}

func finalizedClusteringRun(t *testing.T, f *ClusteringFactory, name string, counts [][]int) *ClusteringRun {
	t.Helper()
	r := f.NewRun(WithRunName(name))
	require.NoError(t, r.AddResults(resultsFromCounts(counts, f.Mapper().Labels(), f.Classes().Labels())))
	require.NoError(t, r.CalculateFinalResults(true))
	return r
}

func mustMatrix(t *testing.T, counts [][]int) *ContingencyMatrix {
	t.Helper()
	m, err := NewContingencyMatrixFromCounts(counts)
	require.NoError(t, err)
	return m
}
