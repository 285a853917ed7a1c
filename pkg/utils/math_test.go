package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundDecimal(t *testing.T) {
	tests := []struct {
		value    float64
		decimals int
		want     float64
	}{
		{value: 122, decimals: 2, want: 122},
		{value: 1.005 * 1000, decimals: 2, want: 1005},
		{value: 81.967213, decimals: 2, want: 81.97},
		{value: 1.1, decimals: 4, want: 1.1},
		{value: 1.08766, decimals: 4, want: 1.0877},
		{value: -2.5, decimals: 0, want: -2},
		{value: 2.5, decimals: 0, want: 3},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, RoundDecimal(tt.value, tt.decimals), 1e-9, "RoundDecimal(%v, %d)", tt.value, tt.decimals)
	}
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(0))
	assert.True(t, IsFinite(-12.5))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.False(t, IsFinite(math.Inf(-1)))
	assert.False(t, IsFinite(math.NaN()))
}
