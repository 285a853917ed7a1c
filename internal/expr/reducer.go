package expr

// ToPostfix reorders infix tokens into postfix order with the shunting-yard
// algorithm. Binary operators of equal precedence are popped first, so they
// associate to the left. Unary minus associates to the right.
func ToPostfix(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	stack := make([]Token, 0, len(tokens)/2)

	for _, tok := range tokens {
		switch tok.Type {
		case NUMBER:
			out = append(out, tok)
		case OPERATOR:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Type != OPERATOR || !popsBefore(top, tok) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case LPAREN:
			stack = append(stack, tok)
		case RPAREN:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Type == LPAREN {
					matched = true
					break
				}
				out = append(out, top)
			}
			if !matched {
				return nil, newSyntaxError(ErrUnbalancedParentheses, -1, "")
			}
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Type == LPAREN || top.Type == RPAREN {
			return nil, newSyntaxError(ErrUnbalancedParentheses, -1, "")
		}
		out = append(out, top)
	}

	return out, nil
}

// popsBefore reports whether the stacked operator top must be emitted before
// the incoming operator tok is pushed.
func popsBefore(top, tok Token) bool {
	if tok.Unary {
		return precedence(top) > precedence(tok)
	}
	return precedence(top) >= precedence(tok)
}
