package in_mem

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/DjordjeVuckovic/ts-perf/internal/apperr"
	"github.com/DjordjeVuckovic/ts-perf/internal/report"
	"github.com/DjordjeVuckovic/ts-perf/internal/storage"
	"github.com/DjordjeVuckovic/ts-perf/pkg/pagination"
	"github.com/google/uuid"
)

// Store keeps reports as encoded JSON so callers never share state with it.
type Store struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID][]byte
	summaries   []report.Summary
}

func NewStore() *Store {
	return &Store{
		storage: make(map[uuid.UUID][]byte),
	}
}

func (s *Store) Save(ctx context.Context, r *report.Report) (uuid.UUID, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal report: %w", err)
	}

	id := uuid.New()
	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.storage[id] = data
	s.summaries = append(s.summaries, r.Summary(id.String()))

	slog.Info("report saved to in-memory storage", "id", id, "experiment", r.Experiment)
	return id, nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*report.Report, error) {
	s.storageLock.RLock()
	data, ok := s.storage[id]
	s.storageLock.RUnlock()
	if !ok {
		return nil, storage.ErrNotFound
	}

	var r report.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return &r, nil
}

func (s *Store) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[report.Summary], error) {
	if err := page.Validate(); err != nil {
		return nil, apperr.NewValidationWrap("invalid page request", err)
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	total := len(s.summaries)
	offset := page.Offset()
	items := make([]report.Summary, 0, min(page.Size, total))
	for i := total - 1 - offset; i >= 0 && len(items) < page.Size; i-- {
		items = append(items, s.summaries[i])
	}

	return pagination.NewOffsetResult(items, int64(total), page), nil
}

func (s *Store) Close() error {
	return nil
}
