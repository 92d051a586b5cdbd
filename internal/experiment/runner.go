package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/ts-perf/internal/perf"
	"golang.org/x/sync/errgroup"
)

// Config overrides per-experiment settings. Zero values keep the file values.
type Config struct {
	Parallel           int
	DeleteTrajectories bool
}

type Runner struct {
	config Config
}

func New(cfg Config) *Runner {
	return &Runner{config: cfg}
}

// Outcome is an evaluated experiment. Runs keep file order.
type Outcome struct {
	Name       string
	Kind       Kind
	Classes    []string
	TrueLabels []string
	Averaging  perf.Averaging
	Runs       []perf.Performances
	Aggregate  perf.Aggregator
	Pooled     *perf.ContingencyMatrix
	Scores     map[string]float64
	Elapsed    time.Duration
}

// evaluator builds one run per RunSpec and owns the matching aggregate.
type evaluator interface {
	newRun(name string) (perf.TrajectoryAccumulator, perf.Performances)
	aggregator() perf.Aggregator
	pooled() *perf.ContingencyMatrix
	scores() map[string]float64
}

type classificationEval struct {
	f   *perf.ClassificationFactory
	agg *perf.Aggregate
}

func (e *classificationEval) newRun(name string) (perf.TrajectoryAccumulator, perf.Performances) {
	r := e.f.NewRun(perf.WithRunName(name))
	return r, r
}

func (e *classificationEval) aggregator() perf.Aggregator     { return e.agg }
func (e *classificationEval) pooled() *perf.ContingencyMatrix { return e.agg.PooledMatrix() }

func (e *classificationEval) scores() map[string]float64 {
	return map[string]float64{"accuracy": e.agg.Score(perf.Accuracy)}
}

type clusteringEval struct {
	f   *perf.ClusteringFactory
	agg *perf.MicroMacroClusterAggregate
}

func (e *clusteringEval) newRun(name string) (perf.TrajectoryAccumulator, perf.Performances) {
	r := e.f.NewRun(perf.WithRunName(name))
	return r, r
}

func (e *clusteringEval) aggregator() perf.Aggregator     { return e.agg }
func (e *clusteringEval) pooled() *perf.ContingencyMatrix { return e.agg.PooledMatrix() }

func (e *clusteringEval) scores() map[string]float64 {
	return e.agg.Scores(perf.ClusterScores)
}

func (r *Runner) Run(ctx context.Context, s *Spec) (*Outcome, error) {
	start := time.Now()

	classes, err := perf.NewClassIndex(s.Classes)
	if err != nil {
		return nil, fmt.Errorf("experiment %q: %w", s.Name, err)
	}

	out := &Outcome{
		Name:    s.Name,
		Kind:    s.Kind,
		Classes: classes.Labels(),
	}

	var ev evaluator
	switch s.Kind {
	case KindClassification:
		f, err := perf.NewClassificationFactory(perf.RunConfig{Classes: classes})
		if err != nil {
			return nil, err
		}
		ev = &classificationEval{f: f, agg: f.NewAggregate()}
		out.TrueLabels = classes.Labels()
	case KindClustering:
		averaging, err := perf.ParseAveraging(s.Clustering.Averaging)
		if err != nil {
			return nil, err
		}
		f, err := perf.NewClusteringFactory(perf.ClusteringConfig{
			Classes:      classes,
			TrueClusters: s.Clustering.TrueClusters,
			Averaging:    averaging,
		})
		if err != nil {
			return nil, fmt.Errorf("experiment %q: %w", s.Name, err)
		}
		ev = &clusteringEval{f: f, agg: f.NewAggregate()}
		out.TrueLabels = f.Mapper().Labels()
		out.Averaging = averaging
	default:
		return nil, fmt.Errorf("experiment %q: unsupported kind %q", s.Name, s.Kind)
	}

	parallel := s.Parallel
	if r.config.Parallel > 0 {
		parallel = r.config.Parallel
	}
	discard := s.DeleteTrajectories || r.config.DeleteTrajectories

	runs := make([]perf.Performances, len(s.Runs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(parallel, 1))
	for i := range s.Runs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			acc, p := ev.newRun(s.Runs[i].Name)
			if err := evaluateRun(acc, s.Runs[i], discard); err != nil {
				return fmt.Errorf("run %q: %w", s.Runs[i].Name, err)
			}
			runs[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("experiment %q: %w", s.Name, err)
	}

	if err := ev.aggregator().AddPerformances(runs...); err != nil {
		return nil, fmt.Errorf("experiment %q: %w", s.Name, err)
	}

	out.Runs = runs
	out.Aggregate = ev.aggregator()
	out.Pooled = ev.pooled()
	out.Scores = ev.scores()
	out.Elapsed = time.Since(start)

	slog.Info("experiment evaluated",
		"experiment", s.Name,
		"kind", s.Kind,
		"runs", len(runs),
		"parallel", parallel,
		"elapsed", out.Elapsed)
	return out, nil
}

func evaluateRun(acc perf.TrajectoryAccumulator, rs RunSpec, discard bool) error {
	results := make([]perf.Result, len(rs.Results))
	times := make([]float64, 0, len(rs.Results))
	for i, res := range rs.Results {
		results[i] = perf.Trajectory{ID: res.Trajectory, True: res.True, Predicted: res.Predicted}
		if res.InferenceTime != nil {
			times = append(times, *res.InferenceTime)
		}
	}

	switch len(times) {
	case len(results):
		if err := acc.AddTimedResults(results, times); err != nil {
			return err
		}
	case 0:
		if err := acc.AddResults(results); err != nil {
			return err
		}
	default:
		// mixed timed and untimed results
		for i, res := range results {
			var err error
			if t := rs.Results[i].InferenceTime; t != nil {
				err = acc.AddTimedResult(res, *t)
			} else {
				err = acc.AddResult(res)
			}
			if err != nil {
				return err
			}
		}
	}

	if rs.LearningTime != nil {
		if err := acc.SetLearningTime(*rs.LearningTime); err != nil {
			return err
		}
	}
	return acc.CalculateFinalResults(discard)
}
