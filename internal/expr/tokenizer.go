package expr

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Tokenizer breaks an arithmetic expression into tokens.
type Tokenizer struct {
	input  string
	pos    int
	tokens []Token
}

func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

// Tokenize is a shorthand for NewTokenizer(input).Tokenize().
func Tokenize(input string) ([]Token, error) {
	return NewTokenizer(input).Tokenize()
}

// Tokenize scans the whole input. A minus sign that cannot be binary is
// rewritten as "0 -" so later stages only deal with binary operators.
func (t *Tokenizer) Tokenize() ([]Token, error) {
	t.tokens = make([]Token, 0, len(t.input))

	for t.pos < len(t.input) {
		char := t.input[t.pos]
		switch {
		case char == ' ':
			t.pos++
		case char == '(':
			t.pos++
			t.tokens = append(t.tokens, OpenParen())
		case char == ')':
			t.pos++
			t.tokens = append(t.tokens, CloseParen())
		case char == '-':
			t.pos++
			if t.unaryPosition() {
				t.tokens = append(t.tokens, Number(0), UnaryMinus())
				continue
			}
			t.tokens = append(t.tokens, Operator('-'))
		case char == '+' || char == '*' || char == '/':
			t.pos++
			t.tokens = append(t.tokens, Operator(char))
		case isNumberChar(char):
			tok, err := t.readNumber()
			if err != nil {
				return nil, err
			}
			t.tokens = append(t.tokens, tok)
		default:
			r, size := utf8.DecodeRuneInString(t.input[t.pos:])
			switch r {
			case '×':
				t.tokens = append(t.tokens, Operator('*'))
			case '÷':
				t.tokens = append(t.tokens, Operator('/'))
			default:
				return nil, newSyntaxError(ErrInvalidToken, t.pos, string(r))
			}
			t.pos += size
		}
	}

	return t.tokens, nil
}

func (t *Tokenizer) unaryPosition() bool {
	if len(t.tokens) == 0 {
		return true
	}
	last := t.tokens[len(t.tokens)-1]
	return last.Type != NUMBER && last.Type != RPAREN
}

func (t *Tokenizer) readNumber() (Token, error) {
	start := t.pos
	for t.pos < len(t.input) && isNumberChar(t.input[t.pos]) {
		t.pos++
	}
	text := t.input[start:t.pos]

	if strings.Count(text, ".") > 1 {
		return Token{}, newSyntaxError(ErrInvalidNumber, start, text)
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return Token{}, newSyntaxError(ErrInvalidNumber, start, text)
	}

	return Number(v), nil
}

func isNumberChar(char byte) bool {
	return (char >= '0' && char <= '9') || char == '.'
}
