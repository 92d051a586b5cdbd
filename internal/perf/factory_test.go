package perf

import (
	"fmt"
	"sync"
	"testing"

	"github.com/DjordjeVuckovic/ts-perf/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactories_RejectInvalidConfig(t *testing.T) {
	_, err := NewClassificationFactory(RunConfig{})
	assert.True(t, apperr.IsInvalidArgument(err))

	_, err = NewClusteringFactory(ClusteringConfig{})
	assert.True(t, apperr.IsInvalidArgument(err))

	_, err = NewClusteringFactory(ClusteringConfig{
		Classes:   mustClasses(t, "k0"),
		Averaging: Averaging(7),
	})
	assert.True(t, apperr.IsInvalidArgument(err))

	_, err = NewClusteringFactory(ClusteringConfig{
		Classes:      mustClasses(t, "k0", "k1"),
		TrueClusters: map[int]string{0: "only"},
	})
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestClassificationFactory_RunsAreIndependent(t *testing.T) {
	f := newClassificationFactory(t, "a", "b")

	const n = 8
	runs := make([]*ClassificationRun, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r := f.NewRun(WithRunName(fmt.Sprintf("r%d", i)))
			for k := 0; k <= i; k++ {
				_ = r.AddResult(Trajectory{ID: fmt.Sprintf("t%d", k), True: "a", Predicted: "b"})
			}
			runs[i] = r
		}(i)
	}
	wg.Wait()

	for i, r := range runs {
		assert.Equal(t, fmt.Sprintf("r%d", i), r.Name())
		assert.Equal(t, i+1, r.Matrix().Total())
		assert.Same(t, f.Classes(), r.Classes())
	}

	agg := f.NewAggregate()
	assert.Zero(t, agg.Len())
}

func TestClusteringFactory_SharesConfiguration(t *testing.T) {
	f, err := NewClusteringFactory(ClusteringConfig{
		Classes:      mustClasses(t, "k0", "k1"),
		TrueClusters: map[int]string{0: "walk", 1: "run"},
		Averaging:    Macro,
	})
	require.NoError(t, err)

	r1, r2 := f.NewRun(), f.NewRun()
	assert.Same(t, f.Mapper(), r1.Mapper())
	assert.Same(t, r1.Mapper(), r2.Mapper())
	assert.Equal(t, Macro, f.Averaging())

	require.NoError(t, r1.AddResult(Trajectory{ID: "x", True: "walk", Predicted: "k0"}))
	assert.Zero(t, r2.Matrix().Total())
}
