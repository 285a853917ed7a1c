package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/calcfin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorer(t *testing.T, capacity int) (*JsonFileStorer, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "history.json")
	s, err := NewJsonFileStorer(path, capacity)
	require.NoError(t, err)
	return s, path
}

func TestJsonFileStorer_PersistsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStorer(t, 2)

	for i := 1; i <= 3; i++ {
		_, err := s.Add(ctx, domain.HistoryEntry{Expression: fmt.Sprintf("=%d*2", i), Result: fmt.Sprint(i * 2)})
		require.NoError(t, err)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 2)
	assert.Equal(t, "=3*2", raw[0]["expr"])
	assert.Equal(t, "6", raw[0]["result"])

	reopened, err := NewJsonFileStorer(path, 2)
	require.NoError(t, err)
	got, total, err := reopened.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, "=2*2", got[1].Expression)
}

func TestJsonFileStorer_CorruptFileStartsEmpty(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStorer(t, 10)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	got, total, err := s.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, total)

	_, err = s.Add(ctx, domain.HistoryEntry{Expression: "1+1", Result: "2"})
	require.NoError(t, err)

	got, _, err = s.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestJsonFileStorer_Clear(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorer(t, 10)

	_, err := s.Add(ctx, domain.HistoryEntry{Expression: "1+1", Result: "2"})
	require.NoError(t, err)
	require.NoError(t, s.Clear(ctx))

	got, total, err := s.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, total)
}

func TestNewJsonFileStorer_EmptyPath(t *testing.T) {
	_, err := NewJsonFileStorer("", 10)
	assert.Error(t, err)
}
