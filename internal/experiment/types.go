package experiment

// Kind selects the run type an experiment evaluates.
type Kind string

const (
	KindClassification Kind = "classification"
	KindClustering     Kind = "clustering"
)

// Spec describes one experiment: a label space and the runs evaluated on it.
type Spec struct {
	Name               string         `yaml:"name" schema:"required,minLength=1"`
	Kind               Kind           `yaml:"kind" schema:"required,enum=classification|clustering"`
	Classes            []string       `yaml:"classes" schema:"required,minItems=1" description:"Predicted label space in index order"`
	Clustering         ClusteringSpec `yaml:"clustering"`
	DeleteTrajectories bool           `yaml:"delete_trajectories" description:"Drop trajectories once each run is finalized"`
	Parallel           int            `yaml:"parallel" schema:"default=1"`
	Runs               []RunSpec      `yaml:"runs" schema:"required,minItems=1"`
}

type ClusteringSpec struct {
	Averaging    string         `yaml:"averaging" schema:"enum=micro|macro,default=micro"`
	TrueClusters map[int]string `yaml:"true_clusters,omitempty" description:"Maps cluster index to true label"`
}

type RunSpec struct {
	Name         string       `yaml:"name" schema:"required,minLength=1"`
	LearningTime *float64     `yaml:"learning_time,omitempty" description:"Seconds"`
	Results      []ResultSpec `yaml:"results"`
}

// ResultSpec is one trajectory outcome. InferenceTime is in seconds.
type ResultSpec struct {
	Trajectory    string   `yaml:"trajectory" schema:"required,minLength=1"`
	True          string   `yaml:"true" schema:"required"`
	Predicted     string   `yaml:"predicted" schema:"required"`
	InferenceTime *float64 `yaml:"inference_time,omitempty" description:"Seconds"`
}
