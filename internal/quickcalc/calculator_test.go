package quickcalc

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/calcfin/internal/expr"
	"github.com/DjordjeVuckovic/calcfin/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "=70*100", want: "70*100"},
		{raw: "  (12,5+7)*3 ", want: "(12.5+7)*3"},
		{raw: "==1", want: "=1"},
		{raw: "", want: ""},
		{raw: "1,5,5", want: "1.5.5"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.raw), "Normalize(%q)", tt.raw)
	}
}

func TestCalculator_Calculate(t *testing.T) {
	ctx := context.Background()
	c := NewCalculator(nil)

	res, err := c.Calculate(ctx, "=70*100")
	require.NoError(t, err)
	assert.Equal(t, "70*100", res.Expression)
	assert.Equal(t, 7000.0, res.Value)
	assert.True(t, res.Finite)
	assert.Equal(t, "7.000", res.Formatted)

	res, err = c.Calculate(ctx, "(12,5+7)*3")
	require.NoError(t, err)
	assert.Equal(t, 58.5, res.Value)
	assert.Equal(t, "58,5", res.Formatted)
}

func TestCalculator_NonFinite(t *testing.T) {
	res, err := NewCalculator(nil).Calculate(context.Background(), "5/0")
	require.NoError(t, err)
	assert.False(t, res.Finite)
	assert.Equal(t, Placeholder, res.Formatted)
}

func TestCalculator_Errors(t *testing.T) {
	ctx := context.Background()
	c := NewCalculator(nil, WithMaxLength(8))

	_, err := c.Calculate(ctx, "  = ")
	assert.ErrorIs(t, err, ErrEmptyExpression)

	_, err = c.Calculate(ctx, "1+2+3+4+5")
	assert.ErrorIs(t, err, ErrExpressionTooLong)

	_, err = c.Calculate(ctx, "1+")
	assert.ErrorIs(t, err, expr.ErrMalformedExpression)

	_, err = c.Calculate(ctx, "(1+2")
	assert.ErrorIs(t, err, expr.ErrUnbalancedParentheses)
}

func TestCalculator_Save(t *testing.T) {
	ctx := context.Background()
	store := in_mem.NewInMemStorer(10)
	c := NewCalculator(store)

	saved, err := c.Save(ctx, " =2+3*4 ")
	require.NoError(t, err)
	assert.Equal(t, "=2+3*4", saved.Expression)
	assert.Equal(t, "14", saved.Result)

	_, err = c.Save(ctx, "1+#2")
	assert.ErrorIs(t, err, expr.ErrInvalidToken)

	entries, total, err := c.History(ctx, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "=2+3*4", entries[0].Expression)

	require.NoError(t, c.ClearHistory(ctx))
	_, total, err = c.History(ctx, 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCalculator_SaveWithoutHistory(t *testing.T) {
	_, err := NewCalculator(nil).Save(context.Background(), "1+1")
	assert.Error(t, err)
}
