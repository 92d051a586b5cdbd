// Package perf turns per-trajectory predictions of time-series classifiers and
// clusterers into run statistics and merges runs into aggregates.
//
// # Runs
//
// A factory bound to a ClassIndex produces one run per experimental run
// (for example one cross-validation fold):
//
//	classes, _ := perf.NewClassIndex([]string{"walk", "run"})
//	f, _ := perf.NewClassificationFactory(perf.RunConfig{Classes: classes})
//	r := f.NewRun(perf.WithRunName("fold-1"))
//	_ = r.AddTimedResult(perf.Trajectory{ID: "t1", True: "walk", Predicted: "run"}, 0.012)
//	_ = r.SetLearningTime(3.4)
//	_ = r.CalculateFinalResults(true)
//
// Each trajectory contributes its final true/predicted pair to exactly one
// contingency-matrix cell, indexed [true][predicted].
//
// # Aggregates
//
// Finalized runs are merged with Aggregate.AddPerformances, which rejects runs
// built on other classes. A clustering factory produces
// MicroMacroClusterAggregate values. They accept only clustering runs scored
// under the same cluster mapping and score the pooled matrix (micro) or
// average per-run scores (macro).
//
// # Sentinels
//
// Lookups return an explicit ok flag. Statistics without data return NaN,
// which keeps "no samples" distinct from "zero variance".
//
// # Thread Safety
//
// Factories are immutable and safe for concurrent use. Runs are single-owner.
// Aggregate.AddPerformances may be called from several goroutines.
package perf
