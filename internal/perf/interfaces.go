package perf

// Result is one classified or clustered trajectory. The core only reads the
// trajectory name and its final true/predicted labels. Implementations must be
// non-nil values; a nil *Trajectory is rejected, other typed nils are not
// detected.
type Result interface {
	Name() string
	TrueLabel() string
	PredictedLabel() string
}

// Trajectory is a plain Result.
type Trajectory struct {
	ID        string `json:"trajectory" yaml:"trajectory"`
	True      string `json:"true" yaml:"true"`
	Predicted string `json:"predicted" yaml:"predicted"`
}

func (t Trajectory) Name() string           { return t.ID }
func (t Trajectory) TrueLabel() string      { return t.True }
func (t Trajectory) PredictedLabel() string { return t.Predicted }

// TimingStats exposes inference-time statistics. NaN means no data.
type TimingStats interface {
	AvgInferenceTime() float64
	VarianceInferenceTime() float64
}

// ContingencyScorable exposes a contingency matrix for scoring.
type ContingencyScorable interface {
	Matrix() *ContingencyMatrix
}

// TrajectoryAccumulator ingests results for a single run.
type TrajectoryAccumulator interface {
	AddResult(r Result) error
	AddTimedResult(r Result, inferenceTime float64) error
	AddResults(rs []Result) error
	AddTimedResults(rs []Result, inferenceTimes []float64) error
	SetLearningTime(t float64) error
	CalculateFinalResults(deleteTrajectories bool) error
	Trajectories() ([]Result, error)
	SortTrajectoriesByName() ([]Result, error)
}

// Performances is what an Aggregator consumes: a run that can report whether
// it is finalized together with its frozen statistics.
type Performances interface {
	TimingStats
	ContingencyScorable
	Name() string
	Classes() *ClassIndex
	LearningTime() float64
	Finalized() bool
	Summary() TimingSummary
}

// Aggregator merges finalized runs.
type Aggregator interface {
	TimingStats
	AddPerformances(runs ...Performances) error
	Performances() []Performances
	AvgLearningTime() float64
	VarianceLearningTime() float64
	LearningTimeSummary() TimingSummary
	InferenceTimeSummary() TimingSummary
}

var (
	_ TrajectoryAccumulator = (*ClassificationRun)(nil)
	_ TrajectoryAccumulator = (*ClusteringRun)(nil)
	_ Performances          = (*ClassificationRun)(nil)
	_ Performances          = (*ClusteringRun)(nil)
	_ Aggregator            = (*Aggregate)(nil)
	_ Aggregator            = (*MicroMacroClusterAggregate)(nil)
)
