//go:build integration

package pg

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/DjordjeVuckovic/calcfin/internal/domain"
	pkgtesting "github.com/DjordjeVuckovic/calcfin/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
)

var (
	testCtx  context.Context
	testPool *ConnectionPool
)

func TestMain(m *testing.M) {
	testCtx = context.Background()

	pg, err := pkgtesting.NewPGContainer(testCtx, pkgtesting.DefaultPGConfig())
	if err != nil {
		panic(err)
	}

	testPool, err = NewConnectionPool(testCtx, PoolConfig{ConnStr: pg.ConnString})
	if err != nil {
		panic(err)
	}
	if err := testPool.EnsureSchema(testCtx); err != nil {
		panic(err)
	}

	code := m.Run()

	testPool.Close()
	_ = testcontainers.TerminateContainer(pg.Container)
	os.Exit(code)
}

func truncateTable(t *testing.T) {
	t.Helper()
	_, err := testPool.GetConn().Exec(testCtx, "TRUNCATE TABLE calc_history")
	require.NoError(t, err)
}

func TestStorer_AddPrunesToCapacity(t *testing.T) {
	truncateTable(t)
	defer truncateTable(t)

	s, err := NewStorer(testPool, 3)
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		_, err := s.Add(testCtx, domain.HistoryEntry{Expression: fmt.Sprintf("=%d", i), Result: fmt.Sprint(i)})
		require.NoError(t, err)
	}

	got, total, err := s.List(testCtx, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, got, 3)
	assert.Equal(t, "=5", got[0].Expression)
	assert.Equal(t, "=3", got[2].Expression)
}

func TestStorer_ListOffset(t *testing.T) {
	truncateTable(t)
	defer truncateTable(t)

	s, err := NewStorer(testPool, 10)
	require.NoError(t, err)
	for i := 1; i <= 3; i++ {
		_, err := s.Add(testCtx, domain.HistoryEntry{Expression: fmt.Sprintf("=%d", i), Result: fmt.Sprint(i)})
		require.NoError(t, err)
	}

	got, total, err := s.List(testCtx, 1, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, got, 1)
	assert.Equal(t, "=2", got[0].Expression)
}

func TestStorer_Clear(t *testing.T) {
	truncateTable(t)

	s, err := NewStorer(testPool, 10)
	require.NoError(t, err)
	_, err = s.Add(testCtx, domain.HistoryEntry{Expression: "1+1", Result: "2"})
	require.NoError(t, err)

	require.NoError(t, s.Clear(testCtx))
	_, total, err := s.List(testCtx, 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestHealthChecker(t *testing.T) {
	assert.True(t, NewHealthChecker(testPool).Healthy(testCtx))
	assert.False(t, NewHealthChecker(nil).Healthy(testCtx))
}
