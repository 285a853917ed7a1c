//go:build integration

package es

import (
	"context"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/calcfin/internal/domain"
	pkgtesting "github.com/DjordjeVuckovic/calcfin/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorer_Integration(t *testing.T) {
	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)

	s, err := NewStorer(ctx, ClientConfig{
		Addresses: []string{container.Address},
		IndexName: "calc_history_test",
	}, 2)
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		_, err := s.Add(ctx, domain.HistoryEntry{Expression: fmt.Sprintf("=%d", i), Result: fmt.Sprint(i)})
		require.NoError(t, err)
	}

	got, total, err := s.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, got, 2)
	assert.Equal(t, "=3", got[0].Expression)

	require.NoError(t, s.Clear(ctx))
	_, total, err = s.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
}
