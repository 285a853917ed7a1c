package expr

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_Postfix(t *testing.T) {
	v, err := Evaluate([]Token{Number(7), Number(2), Operator('-')})
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestEvaluate_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		postfix []Token
	}{
		{name: "empty", postfix: nil},
		{name: "operator without operands", postfix: []Token{Operator('+')}},
		{name: "single operand", postfix: []Token{Number(1), Operator('*')}},
		{name: "two values left", postfix: []Token{Number(1), Number(2)}},
		{name: "parenthesis in postfix", postfix: []Token{Number(1), OpenParen()}},
		{name: "unknown operator", postfix: []Token{Number(1), Number(2), Operator('%')}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.postfix)
			assert.ErrorIs(t, err, ErrMalformedExpression)
		})
	}
}

func TestEvaluateExpression(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{input: "2+3*4", want: 14},
		{input: "(2+3)*4", want: 20},
		{input: "8-3-2", want: 3},
		{input: "20/2/5", want: 2},
		{input: "-5+2", want: -3},
		{input: "3*-2", want: -6},
		{input: "(-4+1)", want: -3},
		{input: "70*100", want: 7000},
		{input: "(12.5+7)*3", want: 58.5},
		{input: " 1 + 2 ", want: 3},
		{input: "6×7", want: 42},
		{input: "9÷4", want: 2.25},
		{input: "--3", want: 3},
		{input: "2*-3*4", want: -24},
		{input: "-2*3", want: -6},
		{input: "-2-3", want: -5},
		{input: "-(1+2)*3", want: -9},
		{input: "10/-4", want: -2.5},
		{input: "0.1+0.2", want: 0.30000000000000004},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := EvaluateExpression(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateExpression_Errors(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
	}{
		{input: "(1+2", wantErr: ErrUnbalancedParentheses},
		{input: "1+2)", wantErr: ErrUnbalancedParentheses},
		{input: "1+", wantErr: ErrMalformedExpression},
		{input: "*2", wantErr: ErrMalformedExpression},
		{input: "", wantErr: ErrMalformedExpression},
		{input: "()", wantErr: ErrMalformedExpression},
		{input: "1 2", wantErr: ErrMalformedExpression},
		{input: "1+#2", wantErr: ErrInvalidToken},
		{input: "1.2.3", wantErr: ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := EvaluateExpression(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEvaluateExpression_DivisionByZero(t *testing.T) {
	v, err := EvaluateExpression("5/0")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	v, err = EvaluateExpression("-5/0")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, -1))

	v, err = EvaluateExpression("0/0")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}

func TestEvaluateExpression_Idempotent(t *testing.T) {
	first, err := EvaluateExpression("(1.5+2)*4-3/2")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := EvaluateExpression("(1.5+2)*4-3/2")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEvaluateExpression_NeverPanics(t *testing.T) {
	inputs := []string{"(", ")", "+", "-", "((((", "))))", "-(", "(-)", "1-", "÷×", " ", "..1", "1(2)", "(1)(2)"}
	for _, input := range inputs {
		assert.NotPanics(t, func() {
			_, err := EvaluateExpression(input)
			if err != nil {
				var se *SyntaxError
				assert.True(t, errors.As(err, &se), "input %q: unexpected error type %T", input, err)
			}
		}, input)
	}
}
