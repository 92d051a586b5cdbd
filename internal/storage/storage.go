package storage

import (
	"context"
	"errors"

	"github.com/DjordjeVuckovic/ts-perf/internal/report"
	"github.com/DjordjeVuckovic/ts-perf/pkg/pagination"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("report not found")

type Storer interface {
	Save(ctx context.Context, r *report.Report) (uuid.UUID, error)
}

type Reader interface {
	Get(ctx context.Context, id uuid.UUID) (*report.Report, error)
	// List returns report summaries, newest first.
	List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[report.Summary], error)
}

// Store is a backend that can both persist and read reports.
type Store interface {
	Storer
	Reader
	Close() error
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
