package report

import (
	"runtime"
	"time"
)

type Report struct {
	Meta       Meta            `json:"meta"`
	Experiment string          `json:"experiment"`
	Kind       string          `json:"kind"`
	Averaging  string          `json:"averaging,omitempty"`
	Classes    []string        `json:"classes"`
	TrueLabels []string        `json:"true_labels"`
	Runs       []RunEntry      `json:"runs"`
	Aggregated AggregatedEntry `json:"aggregated"`
}

type Meta struct {
	Timestamp   time.Time       `json:"timestamp"`
	Elapsed     time.Duration   `json:"elapsed"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

// Timing mirrors perf.TimingSummary with JSON-safe floats.
type Timing struct {
	Count    int   `json:"count"`
	Mean     Float `json:"mean"`
	Variance Float `json:"variance"`
}

type RunEntry struct {
	Name         string           `json:"name"`
	Instances    int              `json:"instances"`
	Matrix       [][]int          `json:"matrix"`
	LearningTime Float            `json:"learning_time"`
	Inference    Timing           `json:"inference"`
	Scores       map[string]Float `json:"scores"`
}

type AggregatedEntry struct {
	RunCount  int              `json:"run_count"`
	Instances int              `json:"instances"`
	Matrix    [][]int          `json:"matrix,omitempty"`
	Learning  Timing           `json:"learning"`
	Inference Timing           `json:"inference"`
	Scores    map[string]Float `json:"scores"`
}

// Summary is the listing view of a stored report.
type Summary struct {
	ID         string    `json:"id"`
	Experiment string    `json:"experiment"`
	Kind       string    `json:"kind"`
	RunCount   int       `json:"run_count"`
	Timestamp  time.Time `json:"timestamp"`
}

func (r *Report) Summary(id string) Summary {
	return Summary{
		ID:         id,
		Experiment: r.Experiment,
		Kind:       r.Kind,
		RunCount:   r.Aggregated.RunCount,
		Timestamp:  r.Meta.Timestamp,
	}
}
