package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/ts-perf/internal/apperr"
	"github.com/DjordjeVuckovic/ts-perf/internal/report"
	"github.com/DjordjeVuckovic/ts-perf/internal/storage"
	"github.com/DjordjeVuckovic/ts-perf/pkg/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store persists reports in the reports table, one JSONB body per row.
type Store struct {
	pool *ConnectionPool
	db   *pgxpool.Pool
}

func NewStore(pool *ConnectionPool) (*Store, error) {
	return &Store{pool: pool, db: pool.conn}, nil
}

func (s *Store) Save(ctx context.Context, r *report.Report) (uuid.UUID, error) {
	body, err := json.Marshal(r)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	cmd := `
        INSERT INTO reports (id, experiment, kind, run_count, created_at, body)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id;
    `
	var id uuid.UUID
	err = s.db.QueryRow(
		ctx,
		cmd,
		uuid.New(),
		r.Experiment,
		r.Kind,
		r.Aggregated.RunCount,
		r.Meta.Timestamp,
		body,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert report: %w", err)
	}

	slog.Info("report saved to postgres", "id", id, "experiment", r.Experiment)
	return id, nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*report.Report, error) {
	var body []byte
	err := s.db.QueryRow(ctx, `SELECT body FROM reports WHERE id = $1`, id).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load report %s: %w", id, err)
	}

	var r report.Report
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report %s: %w", id, err)
	}
	return &r, nil
}

func (s *Store) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[report.Summary], error) {
	if err := page.Validate(); err != nil {
		return nil, apperr.NewValidationWrap("invalid page request", err)
	}

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM reports`).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count reports: %w", err)
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, experiment, kind, run_count, created_at
		FROM reports
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	items := make([]report.Summary, 0, page.Size)
	for rows.Next() {
		var (
			id  uuid.UUID
			sum report.Summary
		)
		if err := rows.Scan(&id, &sum.Experiment, &sum.Kind, &sum.RunCount, &sum.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan report summary: %w", err)
		}
		sum.ID = id.String()
		sum.Timestamp = sum.Timestamp.UTC()
		items = append(items, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reports: %w", err)
	}

	return pagination.NewOffsetResult(items, total, page), nil
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
