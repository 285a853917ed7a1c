package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/calcfin/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Storer struct {
	db       *pgxpool.Pool
	capacity int
}

func NewStorer(pool *ConnectionPool, capacity int) (*Storer, error) {
	if capacity <= 0 {
		capacity = domain.HistoryDefaultCapacity
	}
	return &Storer{db: pool.conn, capacity: capacity}, nil
}

// Add inserts the entry and prunes everything beyond capacity in one transaction.
func (s *Storer) Add(ctx context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error) {
	entry.Prepare(time.Now())

	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO calc_history (id, expression, result, created_at)
			VALUES ($1, $2, $3, $4)
		`, entry.ID, entry.Expression, entry.Result, entry.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert history entry: %w", err)
		}

		_, err = tx.Exec(ctx, `
			DELETE FROM calc_history
			WHERE id NOT IN (
				SELECT id FROM calc_history
				ORDER BY created_at DESC, id DESC
				LIMIT $1
			)
		`, s.capacity)
		if err != nil {
			return fmt.Errorf("failed to prune history: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.HistoryEntry{}, err
	}

	return entry, nil
}

func (s *Storer) List(ctx context.Context, offset, limit int) ([]domain.HistoryEntry, int64, error) {
	var total int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM calc_history`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count history: %w", err)
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, expression, result, created_at
		FROM calc_history
		ORDER BY created_at DESC, id DESC
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query history: %w", err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.HistoryEntry, error) {
		var e domain.HistoryEntry
		err := row.Scan(&e.ID, &e.Expression, &e.Result, &e.CreatedAt)
		return e, err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan history: %w", err)
	}

	return entries, total, nil
}

func (s *Storer) Clear(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM calc_history`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
