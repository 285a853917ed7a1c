package expr

import "strconv"

type TokenType int

const (
	NUMBER TokenType = iota
	OPERATOR
	LPAREN
	RPAREN
)

func (t TokenType) String() string {
	switch t {
	case NUMBER:
		return "NUMBER"
	case OPERATOR:
		return "OPERATOR"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// Token is a lexical token of an arithmetic expression.
// Value is set for NUMBER tokens, Op for OPERATOR tokens. Unary marks the
// minus the tokenizer emits after its implicit zero operand.
type Token struct {
	Type  TokenType
	Value float64
	Op    byte
	Unary bool
}

func Number(v float64) Token {
	return Token{Type: NUMBER, Value: v}
}

func Operator(op byte) Token {
	return Token{Type: OPERATOR, Op: op}
}

// UnaryMinus is the '-' that follows an implicit zero. It binds tighter than
// any binary operator so that 3*-2 reads as 3*(0-2).
func UnaryMinus() Token {
	return Token{Type: OPERATOR, Op: '-', Unary: true}
}

func OpenParen() Token {
	return Token{Type: LPAREN}
}

func CloseParen() Token {
	return Token{Type: RPAREN}
}

func (t Token) String() string {
	switch t.Type {
	case NUMBER:
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	case OPERATOR:
		return string(t.Op)
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	default:
		return "?"
	}
}

const unaryPrecedence = 3

// precedence returns the binding strength of an operator token.
func precedence(t Token) int {
	if t.Unary {
		return unaryPrecedence
	}
	switch t.Op {
	case '*', '/':
		return 2
	case '+', '-':
		return 1
	default:
		return 0
	}
}
