package perf

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sync"

	"github.com/DjordjeVuckovic/ts-perf/internal/apperr"
)

// Aggregate collects finalized runs in insertion order.
type Aggregate struct {
	mu      sync.Mutex
	classes *ClassIndex
	rows    int
	cols    int
	runs    []Performances
}

// NewAggregate returns an empty aggregate for runs built on classes.
func NewAggregate(classes *ClassIndex) (*Aggregate, error) {
	if classes == nil {
		return nil, apperr.NewValidation("aggregate needs a class index")
	}
	return newAggregate(classes, classes.Size(), classes.Size()), nil
}

func newAggregate(classes *ClassIndex, rows, cols int) *Aggregate {
	return &Aggregate{classes: classes, rows: rows, cols: cols}
}

// Classes is the predicted class index every accepted run must share.
func (a *Aggregate) Classes() *ClassIndex {
	return a.classes
}

// AddPerformances appends runs. Either all runs are accepted or none. A nil
// run, a run over other classes or with a foreign matrix shape, or a run that
// is not finalized rejects the whole call.
func (a *Aggregate) AddPerformances(runs ...Performances) error {
	for i, r := range runs {
		if r == nil {
			return apperr.NewValidation(fmt.Sprintf("performances %d is nil", i))
		}
		if !r.Finalized() {
			return fmt.Errorf("run %q: %w", r.Name(), ErrNotFinalized)
		}
		if !sameClasses(a.classes, r.Classes()) {
			return apperr.NewValidation(fmt.Sprintf("run %q is built on classes %v, aggregate expects %v",
				r.Name(), labelsOf(r.Classes()), a.classes.Labels()))
		}
		rows, cols := r.Matrix().Dims()
		if rows != a.rows || cols != a.cols {
			return apperr.NewValidation(fmt.Sprintf("run %q has a %dx%d matrix, aggregate expects %dx%d",
				r.Name(), rows, cols, a.rows, a.cols))
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.runs = append(a.runs, runs...)

	slog.Debug("performances aggregated", "added", len(runs), "total", len(a.runs))
	return nil
}

// Performances returns the accepted runs in insertion order. The slice is a
// copy; the runs are shared.
func (a *Aggregate) Performances() []Performances {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.runs)
}

func (a *Aggregate) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.runs)
}

// LearningTimeSummary covers runs whose learning time was set.
func (a *Aggregate) LearningTimeSummary() TimingSummary {
	runs := a.Performances()
	times := make([]float64, 0, len(runs))
	for _, r := range runs {
		times = append(times, r.LearningTime())
	}
	return summarize(times)
}

func (a *Aggregate) AvgLearningTime() float64 {
	return a.LearningTimeSummary().Mean
}

func (a *Aggregate) VarianceLearningTime() float64 {
	return a.LearningTimeSummary().Variance
}

// InferenceTimeSummary pools every timed instance of every run.
func (a *Aggregate) InferenceTimeSummary() TimingSummary {
	runs := a.Performances()
	parts := make([]TimingSummary, 0, len(runs))
	for _, r := range runs {
		parts = append(parts, r.Summary())
	}
	return mergeSummaries(parts)
}

func (a *Aggregate) AvgInferenceTime() float64 {
	return a.InferenceTimeSummary().Mean
}

func (a *Aggregate) VarianceInferenceTime() float64 {
	return a.InferenceTimeSummary().Variance
}

// PooledMatrix sums the matrices of all runs. It is nil for an empty
// aggregate.
func (a *Aggregate) PooledMatrix() *ContingencyMatrix {
	ms := a.matrices()
	if len(ms) == 0 {
		return nil
	}
	// shapes are checked on insertion
	sum, _ := SumMatrices(ms...)
	return sum
}

func (a *Aggregate) matrices() []*ContingencyMatrix {
	runs := a.Performances()
	ms := make([]*ContingencyMatrix, 0, len(runs))
	for _, r := range runs {
		ms = append(ms, r.Matrix())
	}
	return ms
}

// Score applies s to the pooled matrix. NaN for an empty aggregate.
func (a *Aggregate) Score(s Score) float64 {
	m := a.PooledMatrix()
	if m == nil {
		return math.NaN()
	}
	return s(m)
}
