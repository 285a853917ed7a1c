package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/calcfin/internal/domain"
	"github.com/DjordjeVuckovic/calcfin/internal/storage"
)

// JsonFileStorer persists history as a JSON array of {expr, result} objects,
// newest first. An unreadable file is treated as an empty history.
type JsonFileStorer struct {
	mu       sync.Mutex
	filePath string
	capacity int
	now      func() time.Time
}

func NewJsonFileStorer(filePath string, capacity int) (*JsonFileStorer, error) {
	if filePath == "" {
		return nil, fmt.Errorf("history file path is empty")
	}
	if capacity <= 0 {
		capacity = domain.HistoryDefaultCapacity
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history dir: %w", err)
	}

	return &JsonFileStorer{
		filePath: filePath,
		capacity: capacity,
		now:      time.Now,
	}, nil
}

func (s *JsonFileStorer) Add(ctx context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error) {
	entry.Prepare(s.now())

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load()
	entries = storage.Prepend(entries, entry, s.capacity)
	if err := s.write(entries); err != nil {
		return domain.HistoryEntry{}, err
	}

	slog.Debug("History entry saved to JSON file", "path", s.filePath, "id", entry.ID)
	return entry, nil
}

func (s *JsonFileStorer) List(ctx context.Context, offset, limit int) ([]domain.HistoryEntry, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load()
	if len(entries) > s.capacity {
		entries = entries[:s.capacity]
	}
	return storage.Window(entries, offset, limit), int64(len(entries)), nil
}

func (s *JsonFileStorer) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write([]domain.HistoryEntry{})
}

func (s *JsonFileStorer) load() []domain.HistoryEntry {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Failed to read history file, starting empty", "path", s.filePath, "error", err)
		}
		return nil
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		slog.Warn("Corrupt history file, starting empty", "path", s.filePath, "error", err)
		return nil
	}
	return entries
}

func (s *JsonFileStorer) write(entries []domain.HistoryEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.filePath), ".history-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp history file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp history file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.filePath); err != nil {
		return fmt.Errorf("failed to replace history file: %w", err)
	}
	return nil
}
