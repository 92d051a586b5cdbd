package pg

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/ts-perf/internal/report"
	"github.com/DjordjeVuckovic/ts-perf/internal/storage"
	"github.com/DjordjeVuckovic/ts-perf/pkg/pagination"
	tctesting "github.com/DjordjeVuckovic/ts-perf/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	container := tctesting.NewPGContainerWithCleanup(ctx, t)

	pool, err := NewConnectionPool(ctx, PoolConfig{ConnStr: container.ConnString})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	assert.True(t, NewHealthChecker(pool).Healthy(ctx))

	store, err := NewStore(pool)
	require.NoError(t, err)
	return store
}

func sampleReport(name string, at time.Time) *report.Report {
	return &report.Report{
		Meta:       report.Meta{Timestamp: at},
		Experiment: name,
		Kind:       "classification",
		Classes:    []string{"a", "b"},
		Runs: []report.RunEntry{{
			Name:         "fold-1",
			Instances:    3,
			Matrix:       [][]int{{2, 0}, {1, 0}},
			LearningTime: report.Float(math.NaN()),
			Scores:       map[string]report.Float{"accuracy": 2.0 / 3.0},
		}},
		Aggregated: report.AggregatedEntry{RunCount: 1, Instances: 3},
	}
}

func TestStore_Integration(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		id, err := store.Save(ctx, sampleReport(fmt.Sprintf("exp-%d", i), base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
		ids = append(ids, id)
	}

	got, err := store.Get(ctx, ids[1])
	require.NoError(t, err)
	assert.Equal(t, "exp-1", got.Experiment)
	assert.Equal(t, [][]int{{2, 0}, {1, 0}}, got.Runs[0].Matrix)
	assert.True(t, got.Runs[0].LearningTime.IsNaN())

	_, err = store.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, storage.ErrNotFound)

	page, err := store.List(ctx, pagination.OffsetRequest{Page: 1, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.True(t, page.HasMore)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "exp-2", page.Items[0].Experiment)
	assert.Equal(t, ids[2].String(), page.Items[0].ID)
	assert.Equal(t, 1, page.Items[0].RunCount)
}
