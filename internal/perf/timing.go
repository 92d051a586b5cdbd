package perf

import (
	"fmt"
	"math"

	"github.com/DjordjeVuckovic/ts-perf/internal/apperr"
	"gonum.org/v1/gonum/stat"
)

// TimingSummary holds the sufficient statistics of a set of time samples.
// Mean is NaN without samples, Variance is NaN below two samples.
type TimingSummary struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
}

func emptySummary() TimingSummary {
	return TimingSummary{Mean: math.NaN(), Variance: math.NaN()}
}

// summarize computes the unbiased sample statistics of the non-NaN values in
// xs. NaN entries are placeholders for results added without a time.
func summarize(xs []float64) TimingSummary {
	samples := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			samples = append(samples, x)
		}
	}
	if len(samples) == 0 {
		return emptySummary()
	}

	mean, variance := stat.MeanVariance(samples, nil)
	if len(samples) < 2 {
		variance = math.NaN()
	}
	return TimingSummary{Count: len(samples), Mean: mean, Variance: variance}
}

// mergeSummaries pools summaries as if all underlying samples had been
// summarized together (Chan et al. pairwise update).
func mergeSummaries(parts []TimingSummary) TimingSummary {
	var (
		n    int
		mean float64
		m2   float64
	)
	for _, p := range parts {
		if p.Count == 0 {
			continue
		}
		pm2 := 0.0
		if p.Count > 1 {
			pm2 = p.Variance * float64(p.Count-1)
		}
		total := n + p.Count
		delta := p.Mean - mean
		mean += delta * float64(p.Count) / float64(total)
		m2 += pm2 + delta*delta*float64(n)*float64(p.Count)/float64(total)
		n = total
	}

	if n == 0 {
		return emptySummary()
	}
	s := TimingSummary{Count: n, Mean: mean, Variance: math.NaN()}
	if n > 1 {
		s.Variance = m2 / float64(n-1)
	}
	return s
}

func validateDuration(what string, t float64) error {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return apperr.NewValidation(fmt.Sprintf("%s must be finite, got %v", what, t))
	}
	if t < 0 {
		return apperr.NewValidation(fmt.Sprintf("%s must be non-negative, got %v", what, t))
	}
	return nil
}
