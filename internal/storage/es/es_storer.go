package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/calcfin/internal/domain"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/core/search"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

// pruneBatch bounds how many evicted entries are looked up per Add.
const pruneBatch = 100

type Storer struct {
	client    *elasticsearch.TypedClient
	indexName string
	capacity  int
}

// Document is the history entry as stored in Elasticsearch.
type Document struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Result     string    `json:"result"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewStorer(ctx context.Context, config ClientConfig, capacity int) (*Storer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}
	if capacity <= 0 {
		capacity = domain.HistoryDefaultCapacity
	}

	storer := &Storer{
		client:    client,
		indexName: config.IndexName,
		capacity:  capacity,
	}

	if err := storer.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return storer, nil
}

func (e *Storer) Add(ctx context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error) {
	entry.Prepare(time.Now())
	doc := toDocument(entry)

	res, err := e.client.Index(e.indexName).
		Id(doc.ID).
		Document(doc).
		Refresh(refresh.True).
		Do(ctx)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("failed to index history entry: %w", err)
	}
	slog.Debug("History entry indexed", "id", doc.ID, "index", e.indexName, "result", res.Result)

	if err := e.prune(ctx); err != nil {
		return domain.HistoryEntry{}, err
	}

	return entry, nil
}

func (e *Storer) List(ctx context.Context, offset, limit int) ([]domain.HistoryEntry, int64, error) {
	// the index never holds more than capacity entries
	if offset >= e.capacity {
		offset, limit = 0, 0
	}
	req := e.client.Search().
		Index(e.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		From(offset).
		Size(limit)

	res, err := sortNewestFirst(req).Do(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search history: %w", err)
	}

	entries := make([]domain.HistoryEntry, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, 0, fmt.Errorf("failed to unmarshal history document: %w", err)
		}
		entry, err := fromDocument(doc)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, entry)
	}

	var total int64
	if res.Hits.Total != nil {
		total = res.Hits.Total.Value
	}
	return entries, total, nil
}

func (e *Storer) Clear(ctx context.Context) error {
	_, err := e.client.DeleteByQuery(e.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		Refresh(true).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// prune deletes every document ranked past capacity.
func (e *Storer) prune(ctx context.Context) error {
	req := e.client.Search().
		Index(e.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		From(e.capacity).
		Size(pruneBatch)

	res, err := sortNewestFirst(req).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to find evicted history entries: %w", err)
	}

	for _, hit := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return fmt.Errorf("failed to unmarshal evicted history document: %w", err)
		}
		if _, err := e.client.Delete(e.indexName, doc.ID).Refresh(refresh.True).Do(ctx); err != nil {
			return fmt.Errorf("failed to delete evicted history entry %s: %w", doc.ID, err)
		}
	}
	return nil
}

func (e *Storer) EnsureIndex(ctx context.Context) error {
	exists, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		slog.Info("Index already exists", "index", e.indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":         types.NewKeywordProperty(),
			"expression": types.NewKeywordProperty(),
			"result":     types.NewKeywordProperty(),
			"created_at": types.NewDateProperty(),
		},
	}

	createRes, err := e.client.Indices.Create(e.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", e.indexName)
	return nil
}

// sortNewestFirst orders by created_at, ties broken by id.
func sortNewestFirst(req *search.Search) *search.Search {
	desc := sortorder.Desc
	return req.Sort(
		&types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"created_at": {Order: &desc},
			},
		},
		&types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"id": {Order: &desc},
			},
		},
	)
}

func toDocument(entry domain.HistoryEntry) Document {
	return Document{
		ID:         entry.ID.String(),
		Expression: entry.Expression,
		Result:     entry.Result,
		CreatedAt:  entry.CreatedAt,
	}
}

func fromDocument(doc Document) (domain.HistoryEntry, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("failed to parse history entry ID: %w", err)
	}
	return domain.HistoryEntry{
		ID:         id,
		Expression: doc.Expression,
		Result:     doc.Result,
		CreatedAt:  doc.CreatedAt,
	}, nil
}
