package perf

import (
	"github.com/DjordjeVuckovic/ts-perf/internal/apperr"
)

// RunConfig configures classification runs.
type RunConfig struct {
	Classes *ClassIndex
}

// ClusteringConfig configures clustering runs and their aggregate.
// TrueClusters nil means the predicted clusters are the true clusters.
type ClusteringConfig struct {
	Classes      *ClassIndex
	TrueClusters map[int]string
	Averaging    Averaging
}

// ClassificationFactory creates classification runs and aggregates bound to
// one ClassIndex. It holds no mutable state.
type ClassificationFactory struct {
	classes *ClassIndex
}

func NewClassificationFactory(cfg RunConfig) (*ClassificationFactory, error) {
	if cfg.Classes == nil {
		return nil, apperr.NewValidation("classification factory needs a class index")
	}
	return &ClassificationFactory{classes: cfg.Classes}, nil
}

func (f *ClassificationFactory) Classes() *ClassIndex {
	return f.classes
}

func (f *ClassificationFactory) NewRun(opts ...RunOption) *ClassificationRun {
	return newClassificationRun(f.classes, opts)
}

func (f *ClassificationFactory) NewAggregate() *Aggregate {
	n := f.classes.Size()
	return newAggregate(f.classes, n, n)
}

// ClusteringFactory creates clustering runs and micro/macro aggregates
// sharing one cluster mapping and averaging mode.
type ClusteringFactory struct {
	classes   *ClassIndex
	mapper    *ClusterMapper
	averaging Averaging
}

func NewClusteringFactory(cfg ClusteringConfig) (*ClusteringFactory, error) {
	if cfg.Classes == nil {
		return nil, apperr.NewValidation("clustering factory needs a class index")
	}
	if cfg.Averaging != Micro && cfg.Averaging != Macro {
		return nil, apperr.NewValidation("clustering factory needs micro or macro averaging, got " + cfg.Averaging.String())
	}
	mapper, err := NewClusterMapper(cfg.Classes, cfg.TrueClusters)
	if err != nil {
		return nil, err
	}
	return &ClusteringFactory{
		classes:   cfg.Classes,
		mapper:    mapper,
		averaging: cfg.Averaging,
	}, nil
}

func (f *ClusteringFactory) Classes() *ClassIndex {
	return f.classes
}

func (f *ClusteringFactory) Mapper() *ClusterMapper {
	return f.mapper
}

func (f *ClusteringFactory) Averaging() Averaging {
	return f.averaging
}

func (f *ClusteringFactory) NewRun(opts ...RunOption) *ClusteringRun {
	return newClusteringRun(f.classes, f.mapper, opts)
}

func (f *ClusteringFactory) NewAggregate() *MicroMacroClusterAggregate {
	// f is non-nil here
	a, _ := NewMicroMacroClusterAggregate(f)
	return a
}
