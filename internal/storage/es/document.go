package es

import (
	"encoding/json"
	"time"

	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// ReportDocument is the indexed form of a report. Only the summary fields are
// searchable; the body is stored as-is.
type ReportDocument struct {
	ID         string          `json:"id"`
	Experiment string          `json:"experiment"`
	Kind       string          `json:"kind"`
	RunCount   int             `json:"run_count"`
	Timestamp  time.Time       `json:"timestamp"`
	Report     json.RawMessage `json:"report"`
}

func buildMapping() types.TypeMapping {
	disabled := false
	body := types.NewObjectProperty()
	body.Enabled = &disabled

	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":         types.NewKeywordProperty(),
			"experiment": types.NewKeywordProperty(),
			"kind":       types.NewKeywordProperty(),
			"run_count":  types.NewIntegerNumberProperty(),
			"timestamp":  types.NewDateProperty(),
			"report":     body,
		},
	}
}
