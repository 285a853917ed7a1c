package in_mem

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/DjordjeVuckovic/calcfin/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemStorer_AddAndList(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorer(3)

	for i := 1; i <= 5; i++ {
		saved, err := s.Add(ctx, domain.HistoryEntry{Expression: fmt.Sprintf("=%d+%d", i, i), Result: fmt.Sprint(2 * i)})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, saved.ID)
		assert.False(t, saved.CreatedAt.IsZero())
	}

	got, total, err := s.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, got, 3)
	assert.Equal(t, "=5+5", got[0].Expression)
	assert.Equal(t, "=3+3", got[2].Expression)

	page, _, err := s.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "=4+4", page[0].Expression)
}

func TestInMemStorer_Clear(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorer(0)

	_, err := s.Add(ctx, domain.HistoryEntry{Expression: "1+1", Result: "2"})
	require.NoError(t, err)
	require.NoError(t, s.Clear(ctx))

	got, total, err := s.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, total)
}

func TestInMemStorer_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorer(domain.HistoryDefaultCapacity)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = s.Add(ctx, domain.HistoryEntry{Expression: fmt.Sprint(i), Result: fmt.Sprint(i)})
		}(i)
	}
	wg.Wait()

	_, total, err := s.List(ctx, 0, 100)
	require.NoError(t, err)
	assert.EqualValues(t, domain.HistoryDefaultCapacity, total)
}
