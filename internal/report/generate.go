package report

import (
	"maps"
	"time"

	"github.com/DjordjeVuckovic/ts-perf/internal/experiment"
	"github.com/DjordjeVuckovic/ts-perf/internal/perf"
)

func Generate(out *experiment.Outcome) *Report {
	r := &Report{
		Meta: Meta{
			Timestamp:   time.Now().UTC(),
			Elapsed:     out.Elapsed,
			Environment: NewEnvironmentInfo(),
		},
		Experiment: out.Name,
		Kind:       string(out.Kind),
		Classes:    out.Classes,
		TrueLabels: out.TrueLabels,
	}
	if out.Kind == experiment.KindClustering {
		r.Averaging = out.Averaging.String()
	}

	runScores := runScorers(out.Kind)
	for _, p := range out.Runs {
		m := p.Matrix()
		entry := RunEntry{
			Name:         p.Name(),
			Instances:    m.Total(),
			Matrix:       m.Counts(),
			LearningTime: Float(p.LearningTime()),
			Inference:    fromSummary(p.Summary()),
			Scores:       make(map[string]Float, len(runScores)),
		}
		for name, s := range runScores {
			entry.Scores[name] = Float(s(m))
		}
		r.Runs = append(r.Runs, entry)
	}

	r.Aggregated = AggregatedEntry{
		RunCount:  len(out.Runs),
		Learning:  fromSummary(out.Aggregate.LearningTimeSummary()),
		Inference: fromSummary(out.Aggregate.InferenceTimeSummary()),
		Scores:    make(map[string]Float, len(out.Scores)),
	}
	if out.Pooled != nil {
		r.Aggregated.Instances = out.Pooled.Total()
		r.Aggregated.Matrix = out.Pooled.Counts()
	}
	for name, v := range out.Scores {
		r.Aggregated.Scores[name] = Float(v)
	}

	return r
}

func runScorers(kind experiment.Kind) map[string]perf.Score {
	if kind == experiment.KindClustering {
		return maps.Clone(perf.ClusterScores)
	}
	return map[string]perf.Score{"accuracy": perf.Accuracy}
}

func fromSummary(s perf.TimingSummary) Timing {
	return Timing{
		Count:    s.Count,
		Mean:     Float(s.Mean),
		Variance: Float(s.Variance),
	}
}
