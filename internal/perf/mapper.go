package perf

import (
	"fmt"

	"github.com/DjordjeVuckovic/ts-perf/internal/apperr"
)

// ClusterMapper names the true external clusters that clustering results are
// validated against.
type ClusterMapper struct {
	clusters *ClassIndex
	identity bool
}

// NewClusterMapper builds the true-cluster space. A nil trueClusters map
// reuses the predicted index as the true labeling. A non-nil map must be
// non-empty, dense over 0..n-1, free of duplicate labels and hold as many
// clusters as predicted.
func NewClusterMapper(predicted *ClassIndex, trueClusters map[int]string) (*ClusterMapper, error) {
	if predicted == nil {
		return nil, apperr.NewValidation("cluster mapper needs a predicted class index")
	}
	if trueClusters == nil {
		return &ClusterMapper{clusters: predicted, identity: true}, nil
	}
	if len(trueClusters) == 0 {
		return nil, apperr.NewValidation("explicit cluster mapping is empty")
	}
	if len(trueClusters) != predicted.Size() {
		return nil, apperr.NewValidation(fmt.Sprintf(
			"cluster mapping has %d true clusters but %d predicted clusters are configured",
			len(trueClusters), predicted.Size()))
	}

	clusters, err := newClassIndexFromMap(trueClusters)
	if err != nil {
		return nil, apperr.NewValidationWrap("invalid cluster mapping", err)
	}
	return &ClusterMapper{clusters: clusters}, nil
}

func (m *ClusterMapper) ClassesNumber() int {
	return m.clusters.Size()
}

func (m *ClusterMapper) IndexToValue(i int) (string, bool) {
	return m.clusters.IndexToValue(i)
}

func (m *ClusterMapper) ValueToIndex(label string) (int, bool) {
	return m.clusters.ValueToIndex(label)
}

// Identity reports whether the predicted index doubles as the true labeling.
func (m *ClusterMapper) Identity() bool {
	return m.identity
}

func (m *ClusterMapper) Labels() []string {
	return m.clusters.Labels()
}

// sameMapping holds when a and b are the same mapper or name the same true
// clusters in the same order.
func sameMapping(a, b *ClusterMapper) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a == b || sameClasses(a.clusters, b.clusters)
}

func mappingLabels(m *ClusterMapper) []string {
	if m == nil {
		return nil
	}
	return m.Labels()
}
