package storage

import (
	"context"

	"github.com/DjordjeVuckovic/calcfin/internal/domain"
)

// HistoryStore keeps the most recent calculations, newest first.
// Implementations evict the oldest entries once their capacity is exceeded.
type HistoryStore interface {
	Add(ctx context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error)
	List(ctx context.Context, offset, limit int) ([]domain.HistoryEntry, int64, error)
	Clear(ctx context.Context) error
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
	JSON  Type = "json"
)

func (t Type) Valid() bool {
	switch t {
	case ES, PG, InMem, JSON:
		return true
	default:
		return false
	}
}

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}

// Window returns the [offset, offset+limit) slice of entries, clamped to bounds.
func Window(entries []domain.HistoryEntry, offset, limit int) []domain.HistoryEntry {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(entries) || limit <= 0 {
		return []domain.HistoryEntry{}
	}
	end := offset + limit
	if end > len(entries) {
		end = len(entries)
	}
	out := make([]domain.HistoryEntry, end-offset)
	copy(out, entries[offset:end])
	return out
}

// Prepend inserts entry at the head and trims the slice to capacity.
func Prepend(entries []domain.HistoryEntry, entry domain.HistoryEntry, capacity int) []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, 0, min(len(entries)+1, capacity))
	out = append(out, entry)
	for _, e := range entries {
		if len(out) >= capacity {
			break
		}
		out = append(out, e)
	}
	return out
}
