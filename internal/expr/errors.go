package expr

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidToken          = errors.New("invalid token")
	ErrInvalidNumber         = errors.New("invalid number")
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses")
	ErrMalformedExpression   = errors.New("malformed expression")
)

// SyntaxError reports where in the input an evaluation failed.
// Pos is a byte offset into the input, or -1 when the failure has no single location.
type SyntaxError struct {
	Kind error
	Pos  int
	Text string
}

func (e *SyntaxError) Error() string {
	if e.Pos < 0 {
		return e.Kind.Error()
	}
	if e.Text != "" {
		return fmt.Sprintf("%s %q at offset %d", e.Kind, e.Text, e.Pos)
	}
	return fmt.Sprintf("%s at offset %d", e.Kind, e.Pos)
}

func (e *SyntaxError) Unwrap() error {
	return e.Kind
}

func newSyntaxError(kind error, pos int, text string) *SyntaxError {
	return &SyntaxError{Kind: kind, Pos: pos, Text: text}
}
