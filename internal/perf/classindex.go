package perf

import (
	"fmt"
	"slices"

	"github.com/DjordjeVuckovic/ts-perf/internal/apperr"
)

// ClassIndex is an immutable bijection between labels and dense 0-based
// indices. It is shared read-only by runs, mappers and aggregates.
type ClassIndex struct {
	labels  []string
	indices map[string]int
}

// NewClassIndex assigns index i to labels[i].
func NewClassIndex(labels []string) (*ClassIndex, error) {
	if len(labels) == 0 {
		return nil, apperr.NewValidation("class index needs at least one label")
	}

	indices := make(map[string]int, len(labels))
	for i, l := range labels {
		if prev, ok := indices[l]; ok {
			return nil, apperr.NewValidation(fmt.Sprintf("label %q is used by index %d and %d", l, prev, i))
		}
		indices[l] = i
	}

	return &ClassIndex{
		labels:  slices.Clone(labels),
		indices: indices,
	}, nil
}

// newClassIndexFromMap builds an index from an index->label mapping. Indices
// must cover 0..len(m)-1.
func newClassIndexFromMap(m map[int]string) (*ClassIndex, error) {
	labels := make([]string, len(m))
	for i, l := range m {
		if i < 0 || i >= len(m) {
			return nil, apperr.NewValidation(fmt.Sprintf("index %d out of dense range [0,%d)", i, len(m)))
		}
		labels[i] = l
	}
	return NewClassIndex(labels)
}

func (c *ClassIndex) IndexToValue(i int) (string, bool) {
	if i < 0 || i >= len(c.labels) {
		return "", false
	}
	return c.labels[i], true
}

// ValueToIndex returns -1 and false for unknown labels.
func (c *ClassIndex) ValueToIndex(label string) (int, bool) {
	i, ok := c.indices[label]
	if !ok {
		return -1, false
	}
	return i, true
}

func (c *ClassIndex) Size() int {
	return len(c.labels)
}

// Labels returns a copy of the labels in index order.
func (c *ClassIndex) Labels() []string {
	return slices.Clone(c.labels)
}

// sameClasses holds when a and b are the same index or list the same labels
// in the same order.
func sameClasses(a, b *ClassIndex) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a == b || slices.Equal(a.labels, b.labels)
}

func labelsOf(c *ClassIndex) []string {
	if c == nil {
		return nil
	}
	return c.Labels()
}
