package in_mem

import (
	"context"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/calcfin/internal/domain"
	"github.com/DjordjeVuckovic/calcfin/internal/storage"
)

type InMemStorer struct {
	storageLock sync.RWMutex
	entries     []domain.HistoryEntry
	capacity    int
	now         func() time.Time
}

func NewInMemStorer(capacity int) *InMemStorer {
	if capacity <= 0 {
		capacity = domain.HistoryDefaultCapacity
	}
	return &InMemStorer{
		capacity: capacity,
		now:      time.Now,
	}
}

func (s *InMemStorer) Add(ctx context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error) {
	entry.Prepare(s.now())

	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.entries = storage.Prepend(s.entries, entry, s.capacity)

	return entry, nil
}

func (s *InMemStorer) List(ctx context.Context, offset, limit int) ([]domain.HistoryEntry, int64, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	return storage.Window(s.entries, offset, limit), int64(len(s.entries)), nil
}

func (s *InMemStorer) Clear(ctx context.Context) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.entries = nil
	return nil
}
