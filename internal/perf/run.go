package perf

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/DjordjeVuckovic/ts-perf/internal/apperr"
)

// RunOption configures a run created by a factory.
type RunOption func(*runCore)

// WithRunName names the run in logs and reports.
func WithRunName(name string) RunOption {
	return func(r *runCore) {
		r.name = name
	}
}

func isNilResult(res Result) bool {
	if res == nil {
		return true
	}
	t, ok := res.(*Trajectory)
	return ok && t == nil
}

// cellLocator maps a result to its (true, predicted) matrix cell.
type cellLocator func(Result) (int, int, error)

// runCore is the accumulator shared by classification and clustering runs.
type runCore struct {
	name    string
	classes *ClassIndex
	locate  cellLocator
	matrix  *ContingencyMatrix

	trajectories []Result
	times        []float64 // NaN where no time was given
	learningTime float64

	finalized bool
	discarded bool
	summary   TimingSummary
}

func newRunCore(classes *ClassIndex, rows, cols int, locate cellLocator, opts []RunOption) runCore {
	// rows and cols come from validated factories
	m, _ := NewContingencyMatrix(rows, cols)
	r := runCore{
		classes:      classes,
		locate:       locate,
		matrix:       m,
		learningTime: math.NaN(),
		summary:      emptySummary(),
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r *runCore) Name() string {
	return r.name
}

func (r *runCore) Classes() *ClassIndex {
	return r.classes
}

func (r *runCore) AddResult(res Result) error {
	return r.add([]Result{res}, nil)
}

func (r *runCore) AddTimedResult(res Result, inferenceTime float64) error {
	return r.add([]Result{res}, []float64{inferenceTime})
}

func (r *runCore) AddResults(rs []Result) error {
	return r.add(rs, nil)
}

// AddTimedResults pairs results and times by position.
func (r *runCore) AddTimedResults(rs []Result, inferenceTimes []float64) error {
	if len(rs) != len(inferenceTimes) {
		return apperr.NewValidation(fmt.Sprintf("got %d results and %d inference times", len(rs), len(inferenceTimes)))
	}
	if inferenceTimes == nil {
		inferenceTimes = []float64{}
	}
	return r.add(rs, inferenceTimes)
}

// add validates every result before touching any state. A nil times slice
// means the results are untimed.
func (r *runCore) add(rs []Result, times []float64) error {
	if r.finalized {
		return fmt.Errorf("run %q: %w", r.name, ErrRunFinalized)
	}

	cells := make([][2]int, len(rs))
	for i, res := range rs {
		if isNilResult(res) {
			return apperr.NewValidation(fmt.Sprintf("result %d is nil", i))
		}
		t, p, err := r.locate(res)
		if err != nil {
			return fmt.Errorf("result %d (%s): %w", i, res.Name(), err)
		}
		cells[i] = [2]int{t, p}
		if times != nil {
			if err := validateDuration("inference time", times[i]); err != nil {
				return fmt.Errorf("result %d (%s): %w", i, res.Name(), err)
			}
		}
	}

	for i, res := range rs {
		r.matrix.increment(cells[i][0], cells[i][1])
		r.trajectories = append(r.trajectories, res)
		if times != nil {
			r.times = append(r.times, times[i])
		} else {
			r.times = append(r.times, math.NaN())
		}
	}
	return nil
}

// SetLearningTime overwrites any previous learning time. The learning time is
// frozen by CalculateFinalResults.
func (r *runCore) SetLearningTime(t float64) error {
	if r.finalized {
		return fmt.Errorf("run %q: %w", r.name, ErrRunFinalized)
	}
	if err := validateDuration("learning time", t); err != nil {
		return err
	}
	r.learningTime = t
	return nil
}

// LearningTime is NaN until set.
func (r *runCore) LearningTime() float64 {
	return r.learningTime
}

// CalculateFinalResults freezes the timing statistics. With
// deleteTrajectories the stored trajectories and per-instance times are
// released; this cannot be undone.
func (r *runCore) CalculateFinalResults(deleteTrajectories bool) error {
	if !r.finalized {
		r.summary = summarize(r.times)
		r.finalized = true
	}

	if deleteTrajectories && !r.discarded {
		r.trajectories = nil
		r.times = nil
		r.discarded = true
	}

	slog.Debug("run finalized",
		"run", r.name,
		"instances", r.matrix.Total(),
		"timed", r.summary.Count,
		"discarded", r.discarded)
	return nil
}

func (r *runCore) Finalized() bool {
	return r.finalized
}

// Discarded reports whether trajectories were released.
func (r *runCore) Discarded() bool {
	return r.discarded
}

// Summary returns the frozen statistics once finalized, the live ones before.
func (r *runCore) Summary() TimingSummary {
	if r.finalized {
		return r.summary
	}
	return summarize(r.times)
}

func (r *runCore) AvgInferenceTime() float64 {
	return r.Summary().Mean
}

func (r *runCore) VarianceInferenceTime() float64 {
	return r.Summary().Variance
}

// Matrix returns a copy of the contingency matrix.
func (r *runCore) Matrix() *ContingencyMatrix {
	return r.matrix.Clone()
}

// Trajectories returns the stored results in insertion order.
func (r *runCore) Trajectories() ([]Result, error) {
	if r.discarded {
		return nil, fmt.Errorf("run %q: %w", r.name, ErrTrajectoriesDiscarded)
	}
	return slices.Clone(r.trajectories), nil
}

// InferenceTimes is parallel to Trajectories; NaN marks untimed results.
func (r *runCore) InferenceTimes() ([]float64, error) {
	if r.discarded {
		return nil, fmt.Errorf("run %q: %w", r.name, ErrTrajectoriesDiscarded)
	}
	return slices.Clone(r.times), nil
}

// SortTrajectoriesByName returns a new slice ordered by name. Equal names keep
// their insertion order.
func (r *runCore) SortTrajectoriesByName() ([]Result, error) {
	out, err := r.Trajectories()
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(out, func(a, b Result) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return out, nil
}

// ClassificationRun scores predicted classes against true classes drawn from
// the same ClassIndex.
type ClassificationRun struct {
	runCore
}

func newClassificationRun(classes *ClassIndex, opts []RunOption) *ClassificationRun {
	locate := func(res Result) (int, int, error) {
		t, ok := classes.ValueToIndex(res.TrueLabel())
		if !ok {
			return 0, 0, apperr.NewValidation(fmt.Sprintf("unknown true class %q", res.TrueLabel()))
		}
		p, ok := classes.ValueToIndex(res.PredictedLabel())
		if !ok {
			return 0, 0, apperr.NewValidation(fmt.Sprintf("unknown predicted class %q", res.PredictedLabel()))
		}
		return t, p, nil
	}
	n := classes.Size()
	return &ClassificationRun{runCore: newRunCore(classes, n, n, locate, opts)}
}

// Accuracy is the share of trajectories on the diagonal.
func (r *ClassificationRun) Accuracy() float64 {
	return Accuracy(r.matrix)
}

// ClusteringRun scores predicted cluster indices against external true
// clusters. Rows follow the mapper, columns the predicted ClassIndex.
type ClusteringRun struct {
	runCore
	mapper *ClusterMapper
}

func newClusteringRun(classes *ClassIndex, mapper *ClusterMapper, opts []RunOption) *ClusteringRun {
	locate := func(res Result) (int, int, error) {
		t, ok := mapper.ValueToIndex(res.TrueLabel())
		if !ok {
			return 0, 0, apperr.NewValidation(fmt.Sprintf("unknown true cluster %q", res.TrueLabel()))
		}
		p, ok := classes.ValueToIndex(res.PredictedLabel())
		if !ok {
			return 0, 0, apperr.NewValidation(fmt.Sprintf("unknown predicted cluster %q", res.PredictedLabel()))
		}
		return t, p, nil
	}
	return &ClusteringRun{
		runCore: newRunCore(classes, mapper.ClassesNumber(), classes.Size(), locate, opts),
		mapper:  mapper,
	}
}

func (r *ClusteringRun) Mapper() *ClusterMapper {
	return r.mapper
}

// Purity of this run's clustering.
func (r *ClusteringRun) Purity() float64 {
	return Purity(r.matrix)
}
