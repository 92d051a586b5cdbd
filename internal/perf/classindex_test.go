package perf

import (
	"testing"

	"github.com/DjordjeVuckovic/ts-perf/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClassIndex(t *testing.T) {
	t.Run("bijection", func(t *testing.T) {
		c, err := NewClassIndex([]string{"walk", "run", "sit"})
		require.NoError(t, err)
		assert.Equal(t, 3, c.Size())

		for i, want := range []string{"walk", "run", "sit"} {
			got, ok := c.IndexToValue(i)
			assert.True(t, ok)
			assert.Equal(t, want, got)

			idx, ok := c.ValueToIndex(want)
			assert.True(t, ok)
			assert.Equal(t, i, idx)
		}
	})

	t.Run("not found", func(t *testing.T) {
		c := mustClasses(t, "a")

		label, ok := c.IndexToValue(1)
		assert.False(t, ok)
		assert.Empty(t, label)

		label, ok = c.IndexToValue(-1)
		assert.False(t, ok)
		assert.Empty(t, label)

		idx, ok := c.ValueToIndex("b")
		assert.False(t, ok)
		assert.Equal(t, -1, idx)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := NewClassIndex(nil)
		assert.True(t, apperr.IsInvalidArgument(err))
	})

	t.Run("duplicate label", func(t *testing.T) {
		_, err := NewClassIndex([]string{"a", "b", "a"})
		require.Error(t, err)
		assert.True(t, apperr.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), `"a"`)
	})

	t.Run("labels are copied", func(t *testing.T) {
		in := []string{"a", "b"}
		c := mustClasses(t, in...)
		in[0] = "z"
		out := c.Labels()
		out[1] = "y"

		assert.Equal(t, []string{"a", "b"}, c.Labels())
	})
}

func TestNewClassIndexFromMap(t *testing.T) {
	c, err := newClassIndexFromMap(map[int]string{1: "b", 0: "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, c.Labels())

	_, err = newClassIndexFromMap(map[int]string{0: "a", 2: "c"})
	assert.True(t, apperr.IsInvalidArgument(err))
}
