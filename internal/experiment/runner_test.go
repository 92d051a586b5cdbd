package experiment

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/ts-perf/internal/apperr"
	"github.com/DjordjeVuckovic/ts-perf/internal/perf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestRunner_Clustering(t *testing.T) {
	s, err := LoadFromFile("testdata/clustering.yaml")
	require.NoError(t, err)

	out, err := New(Config{}).Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, KindClustering, out.Kind)
	assert.Equal(t, perf.Macro, out.Averaging)
	assert.Equal(t, []string{"k0", "k1"}, out.Classes)
	assert.Equal(t, []string{"walk", "run"}, out.TrueLabels)

	require.Len(t, out.Runs, 2)
	assert.Equal(t, "fold-1", out.Runs[0].Name())
	assert.Equal(t, [][]int{{3, 1}, {0, 4}}, out.Runs[0].Matrix().Counts())
	assert.Equal(t, [][]int{{1, 1}, {1, 1}}, out.Runs[1].Matrix().Counts())
	assert.Equal(t, [][]int{{4, 2}, {1, 5}}, out.Pooled.Counts())

	assert.InDelta(t, 0.6875, out.Scores["purity"], 1e-12)
	assert.Contains(t, out.Scores, "ari")

	assert.InDelta(t, 3.0, out.Aggregate.AvgLearningTime(), 1e-12)
	assert.InDelta(t, 2.0, out.Aggregate.VarianceLearningTime(), 1e-12)
	assert.InDelta(t, 4.5, out.Aggregate.AvgInferenceTime(), 1e-12)
	assert.InDelta(t, 6.0, out.Aggregate.VarianceInferenceTime(), 1e-12)

	// delete_trajectories is set
	acc, ok := out.Runs[0].(perf.TrajectoryAccumulator)
	require.True(t, ok)
	_, err = acc.Trajectories()
	assert.True(t, errors.Is(err, perf.ErrTrajectoriesDiscarded))
}

func TestRunner_Classification(t *testing.T) {
	s := &Spec{
		Name:     "har-knn",
		Kind:     KindClassification,
		Classes:  []string{"walk", "run"},
		Parallel: 4,
	}
	for i := 0; i < 6; i++ {
		s.Runs = append(s.Runs, RunSpec{
			Name:         fmt.Sprintf("fold-%d", i),
			LearningTime: ptr(float64(i)),
			Results: []ResultSpec{
				{Trajectory: "a", True: "walk", Predicted: "walk", InferenceTime: ptr(0.5)},
				{Trajectory: "b", True: "run", Predicted: "walk"},
			},
		})
	}

	out, err := New(Config{}).Run(context.Background(), s)
	require.NoError(t, err)

	for i, r := range out.Runs {
		assert.Equal(t, fmt.Sprintf("fold-%d", i), r.Name())
	}
	assert.Equal(t, [][]int{{6, 0}, {6, 0}}, out.Pooled.Counts())
	assert.InDelta(t, 0.5, out.Scores["accuracy"], 1e-12)
	assert.Equal(t, 6, out.Aggregate.InferenceTimeSummary().Count)
	assert.InDelta(t, 2.5, out.Aggregate.AvgLearningTime(), 1e-12)

	// trajectories kept
	acc := out.Runs[0].(perf.TrajectoryAccumulator)
	trajs, err := acc.Trajectories()
	require.NoError(t, err)
	assert.Len(t, trajs, 2)
}

func TestRunner_ConfigOverridesDiscard(t *testing.T) {
	s := &Spec{
		Name:    "x",
		Kind:    KindClassification,
		Classes: []string{"a"},
		Runs:    []RunSpec{{Name: "r", Results: []ResultSpec{{Trajectory: "t", True: "a", Predicted: "a"}}}},
	}
	out, err := New(Config{DeleteTrajectories: true, Parallel: 2}).Run(context.Background(), s)
	require.NoError(t, err)

	_, err = out.Runs[0].(perf.TrajectoryAccumulator).Trajectories()
	assert.True(t, apperr.IsState(err))
}

func TestRunner_Errors(t *testing.T) {
	t.Run("unknown label fails the experiment", func(t *testing.T) {
		s := &Spec{
			Name:    "bad",
			Kind:    KindClassification,
			Classes: []string{"a", "b"},
			Runs: []RunSpec{
				{Name: "ok", Results: []ResultSpec{{Trajectory: "t", True: "a", Predicted: "b"}}},
				{Name: "broken", Results: []ResultSpec{{Trajectory: "t", True: "a", Predicted: "zzz"}}},
			},
		}
		_, err := New(Config{}).Run(context.Background(), s)
		require.Error(t, err)
		assert.True(t, apperr.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), `run "broken"`)
	})

	t.Run("negative learning time", func(t *testing.T) {
		s := &Spec{
			Name:    "bad",
			Kind:    KindClassification,
			Classes: []string{"a"},
			Runs:    []RunSpec{{Name: "r", LearningTime: ptr(-1)}},
		}
		_, err := New(Config{}).Run(context.Background(), s)
		assert.True(t, apperr.IsInvalidArgument(err))
	})

	t.Run("invalid cluster mapping", func(t *testing.T) {
		s := &Spec{
			Name:       "bad",
			Kind:       KindClustering,
			Classes:    []string{"k0", "k1"},
			Clustering: ClusteringSpec{TrueClusters: map[int]string{0: "walk"}},
			Runs:       []RunSpec{{Name: "r"}},
		}
		_, err := New(Config{}).Run(context.Background(), s)
		assert.True(t, apperr.IsInvalidArgument(err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		s := &Spec{
			Name:    "x",
			Kind:    KindClassification,
			Classes: []string{"a"},
			Runs:    []RunSpec{{Name: "r"}},
		}
		_, err := New(Config{}).Run(ctx, s)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
