package storage

import (
	"testing"

	"github.com/DjordjeVuckovic/calcfin/internal/domain"
	"github.com/stretchr/testify/assert"
)

func entries(exprs ...string) []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, len(exprs))
	for i, e := range exprs {
		out[i] = domain.HistoryEntry{Expression: e}
	}
	return out
}

func TestPrepend(t *testing.T) {
	got := Prepend(entries("b", "a"), domain.HistoryEntry{Expression: "c"}, 2)
	assert.Equal(t, entries("c", "b"), got)

	got = Prepend(nil, domain.HistoryEntry{Expression: "a"}, 10)
	assert.Equal(t, entries("a"), got)
}

func TestWindow(t *testing.T) {
	all := entries("e", "d", "c", "b", "a")

	assert.Equal(t, entries("e", "d"), Window(all, 0, 2))
	assert.Equal(t, entries("a"), Window(all, 4, 2))
	assert.Empty(t, Window(all, 5, 2))
	assert.Empty(t, Window(all, 0, 0))
	assert.Equal(t, entries("e"), Window(all, -1, 1))
}

func TestType_Valid(t *testing.T) {
	for _, st := range []Type{ES, PG, InMem, JSON} {
		assert.True(t, st.Valid(), st)
	}
	assert.False(t, Type("redis").Valid())
}
