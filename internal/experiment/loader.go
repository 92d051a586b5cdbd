package experiment

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/ts-perf/internal/apperr"
	"github.com/DjordjeVuckovic/ts-perf/internal/perf"
	"gopkg.in/yaml.v3"
)

const DefaultParallel = 1

func LoadFromFile(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read experiment file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, apperr.NewValidationWrap("parse experiment YAML", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func validate(s *Spec) error {
	if s.Name == "" {
		return apperr.NewValidation("experiment has no name")
	}
	switch s.Kind {
	case KindClassification:
		if s.Clustering.TrueClusters != nil || s.Clustering.Averaging != "" {
			return apperr.NewValidation(fmt.Sprintf("experiment %q: clustering options need kind %q", s.Name, KindClustering))
		}
	case KindClustering:
		if _, err := perf.ParseAveraging(s.Clustering.Averaging); err != nil {
			return fmt.Errorf("experiment %q: %w", s.Name, err)
		}
	default:
		return apperr.NewValidation(fmt.Sprintf("experiment %q has invalid kind %q", s.Name, s.Kind))
	}
	if len(s.Classes) == 0 {
		return apperr.NewValidation(fmt.Sprintf("experiment %q has no classes", s.Name))
	}
	if len(s.Runs) == 0 {
		return apperr.NewValidation(fmt.Sprintf("experiment %q has no runs", s.Name))
	}

	seen := make(map[string]bool, len(s.Runs))
	for i, r := range s.Runs {
		if r.Name == "" {
			return apperr.NewValidation(fmt.Sprintf("run at index %d has no name", i))
		}
		if seen[r.Name] {
			return apperr.NewValidation(fmt.Sprintf("duplicate run name %q", r.Name))
		}
		seen[r.Name] = true
		for j, res := range r.Results {
			if res.Trajectory == "" {
				return apperr.NewValidation(fmt.Sprintf("run %q: result at index %d has no trajectory", r.Name, j))
			}
		}
	}

	if s.Parallel <= 0 {
		s.Parallel = DefaultParallel
	}
	return nil
}
