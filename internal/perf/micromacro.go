package perf

import (
	"fmt"
	"math"
	"strings"

	"github.com/DjordjeVuckovic/ts-perf/internal/apperr"
)

// Averaging selects how per-run clustering scores are combined.
type Averaging int

const (
	// Micro pools all matrices, then scores once. Large runs weigh more.
	Micro Averaging = iota
	// Macro scores each run, then takes the unweighted mean.
	Macro
)

func (a Averaging) String() string {
	switch a {
	case Micro:
		return "micro"
	case Macro:
		return "macro"
	default:
		return fmt.Sprintf("averaging(%d)", int(a))
	}
}

// ParseAveraging accepts "micro" and "macro", case-insensitively. An empty
// string selects Micro.
func ParseAveraging(s string) (Averaging, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "micro":
		return Micro, nil
	case "macro":
		return Macro, nil
	default:
		return 0, apperr.NewValidation(fmt.Sprintf("unknown averaging %q, expected micro or macro", s))
	}
}

// MicroMacroClusterAggregate aggregates clustering runs and scores them with a
// fixed averaging mode.
type MicroMacroClusterAggregate struct {
	*Aggregate
	averaging Averaging
	mapper    *ClusterMapper
}

// NewMicroMacroClusterAggregate binds a new aggregate to the factory's class
// index, cluster mapping and averaging mode.
func NewMicroMacroClusterAggregate(f *ClusteringFactory) (*MicroMacroClusterAggregate, error) {
	if f == nil {
		return nil, apperr.NewValidation("micro/macro aggregate needs a clustering factory")
	}
	return &MicroMacroClusterAggregate{
		Aggregate: newAggregate(f.classes, f.mapper.ClassesNumber(), f.classes.Size()),
		averaging: f.averaging,
		mapper:    f.mapper,
	}, nil
}

// AddPerformances accepts only clustering runs scored under the aggregate's
// cluster mapping: the same mapper, or one with the same true cluster labels.
// The predicted classes are checked by the embedded Aggregate.
func (a *MicroMacroClusterAggregate) AddPerformances(runs ...Performances) error {
	for i, r := range runs {
		if r == nil {
			return apperr.NewValidation(fmt.Sprintf("performances %d is nil", i))
		}
		cr, ok := r.(*ClusteringRun)
		if !ok || cr == nil {
			return apperr.NewValidation(fmt.Sprintf("performances %d (%T) is not a clustering run", i, r))
		}
		if !sameMapping(a.mapper, cr.Mapper()) {
			return apperr.NewValidation(fmt.Sprintf("run %q maps to true clusters %v, aggregate expects %v",
				cr.Name(), mappingLabels(cr.Mapper()), a.mapper.Labels()))
		}
	}
	return a.Aggregate.AddPerformances(runs...)
}

func (a *MicroMacroClusterAggregate) Averaging() Averaging {
	return a.averaging
}

func (a *MicroMacroClusterAggregate) Mapper() *ClusterMapper {
	return a.mapper
}

// Score combines s over the aggregated runs according to the averaging mode.
// NaN for an empty aggregate.
func (a *MicroMacroClusterAggregate) Score(s Score) float64 {
	ms := a.matrices()
	if len(ms) == 0 {
		return math.NaN()
	}

	if a.averaging == Micro {
		// shapes are checked on insertion
		pooled, _ := SumMatrices(ms...)
		return s(pooled)
	}

	var sum float64
	for _, m := range ms {
		sum += s(m)
	}
	return sum / float64(len(ms))
}

// Scores evaluates every named score.
func (a *MicroMacroClusterAggregate) Scores(named map[string]Score) map[string]float64 {
	out := make(map[string]float64, len(named))
	for name, s := range named {
		out[name] = a.Score(s)
	}
	return out
}
