package factory

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/ts-perf/internal/storage"
	"github.com/DjordjeVuckovic/ts-perf/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Run("defaults to in-memory", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "")
		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, storage.InMem, cfg.Type)
		assert.Nil(t, cfg.Pg)
		assert.Nil(t, cfg.Es)
	})

	t.Run("invalid type", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "mysql")
		_, err := LoadEnv()
		assert.ErrorContains(t, err, "invalid STORAGE_TYPE")
	})

	t.Run("pg needs a connection string", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "pg")
		t.Setenv("PG_CONNECTION_STRING", "")
		_, err := LoadEnv()
		assert.Error(t, err)

		t.Setenv("PG_CONNECTION_STRING", "postgres://localhost/tsperf")
		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, "postgres://localhost/tsperf", cfg.Pg.ConnStr)
		assert.Zero(t, cfg.Pg.MaxConns)

		t.Setenv("PG_MAX_CONNS", "8")
		cfg, err = LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, int32(8), cfg.Pg.MaxConns)

		t.Setenv("PG_MAX_CONNS", "zero")
		_, err = LoadEnv()
		assert.ErrorContains(t, err, "PG_MAX_CONNS")
	})

	t.Run("es needs addresses", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "es")
		t.Setenv("ES_ADDRESSES", "")
		t.Setenv("ES_INDEX_NAME", "reports")
		_, err := LoadEnv()
		assert.ErrorContains(t, err, "incomplete")

		t.Setenv("ES_ADDRESSES", "http://es1:9200,, http://es2:9200")
		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, []string{"http://es1:9200", "http://es2:9200"}, cfg.Es.Addresses)
		assert.Equal(t, "reports", cfg.Es.IndexName)

		t.Setenv("ES_INDEX_NAME", "")
		cfg, err = LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, DefaultIndexName, cfg.Es.IndexName)
	})
}

func TestNewStore(t *testing.T) {
	store, hc, err := NewStore(context.Background(), &StorageConfig{Type: storage.InMem})
	require.NoError(t, err)
	assert.IsType(t, &in_mem.Store{}, store)
	assert.True(t, hc.Healthy(context.Background()))

	_, _, err = NewStore(context.Background(), &StorageConfig{Type: "sqlite"})
	assert.Error(t, err)

	_, _, err = NewStore(context.Background(), &StorageConfig{Type: storage.PG})
	assert.Error(t, err)
}
