package es

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/ts-perf/internal/apperr"
	"github.com/DjordjeVuckovic/ts-perf/internal/report"
	"github.com/DjordjeVuckovic/ts-perf/internal/storage"
	"github.com/DjordjeVuckovic/ts-perf/pkg/pagination"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

type Store struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewStore(ctx context.Context, config ClientConfig) (*Store, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	s := &Store{
		client:    client,
		indexName: config.IndexName,
	}
	if err := s.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}
	return s, nil
}

// Healthy reports whether the cluster answers a ping.
func (s *Store) Healthy(ctx context.Context) bool {
	ok, err := s.client.Ping().Do(ctx)
	if err != nil {
		slog.Warn("Elasticsearch ping failed", "error", err)
		return false
	}
	return ok
}

func (s *Store) EnsureIndex(ctx context.Context) error {
	exists, err := s.client.Indices.Exists(s.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		slog.Info("Index already exists", "index", s.indexName)
		return nil
	}

	mappings := buildMapping()
	createRes, err := s.client.Indices.Create(s.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", s.indexName)
	return nil
}

func (s *Store) Save(ctx context.Context, r *report.Report) (uuid.UUID, error) {
	body, err := json.Marshal(r)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	id := uuid.New()
	doc := ReportDocument{
		ID:         id.String(),
		Experiment: r.Experiment,
		Kind:       r.Kind,
		RunCount:   r.Aggregated.RunCount,
		Timestamp:  r.Meta.Timestamp,
		Report:     body,
	}

	res, err := s.client.Index(s.indexName).
		Id(doc.ID).
		Document(doc).
		Refresh(refresh.True).
		Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index report: %w", err)
	}

	slog.Info("report indexed", "id", doc.ID, "index", s.indexName, "result", res.Result)
	return id, nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*report.Report, error) {
	res, err := s.client.Get(s.indexName, id.String()).Do(ctx)
	if err != nil {
		var esErr *types.ElasticsearchError
		if errors.As(err, &esErr) && esErr.Status == http.StatusNotFound {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get report %s: %w", id, err)
	}
	if !res.Found {
		return nil, storage.ErrNotFound
	}

	var doc ReportDocument
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	var r report.Report
	if err := json.Unmarshal(doc.Report, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report %s: %w", id, err)
	}
	return &r, nil
}

func (s *Store) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[report.Summary], error) {
	if err := page.Validate(); err != nil {
		return nil, apperr.NewValidationWrap("invalid page request", err)
	}

	desc := sortorder.Desc
	res, err := s.client.Search().
		Index(s.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		From(page.Offset()).
		Size(page.Size).
		TrackTotalHits(true).
		Sort(
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"timestamp": {Order: &desc},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"id": {Order: &desc},
				},
			},
		).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search reports: %w", err)
	}

	items := make([]report.Summary, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc ReportDocument
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		items = append(items, report.Summary{
			ID:         doc.ID,
			Experiment: doc.Experiment,
			Kind:       doc.Kind,
			RunCount:   doc.RunCount,
			Timestamp:  doc.Timestamp,
		})
	}

	var total int64
	if res.Hits.Total != nil {
		total = res.Hits.Total.Value
	}

	slog.Debug("es reports listed", "total", total, "returned", len(items))
	return pagination.NewOffsetResult(items, total, page), nil
}

func (s *Store) Close() error {
	return nil
}
