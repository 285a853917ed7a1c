package expr

// Evaluate computes the value of a postfix token sequence.
// Division by zero is not an error: it yields ±Inf or NaN.
func Evaluate(postfix []Token) (float64, error) {
	stack := make([]float64, 0, len(postfix))

	for _, tok := range postfix {
		switch tok.Type {
		case NUMBER:
			stack = append(stack, tok.Value)
		case OPERATOR:
			if len(stack) < 2 {
				return 0, newSyntaxError(ErrMalformedExpression, -1, "")
			}
			b, a := stack[len(stack)-1], stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			v, err := apply(tok.Op, a, b)
			if err != nil {
				return 0, err
			}
			stack = append(stack, v)
		default:
			return 0, newSyntaxError(ErrMalformedExpression, -1, tok.String())
		}
	}

	if len(stack) != 1 {
		return 0, newSyntaxError(ErrMalformedExpression, -1, "")
	}
	return stack[0], nil
}

func apply(op byte, a, b float64) (float64, error) {
	switch op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/':
		return a / b, nil
	default:
		return 0, newSyntaxError(ErrMalformedExpression, -1, string(op))
	}
}

// EvaluateExpression tokenizes, reorders and evaluates an infix expression.
// The first failing stage's error is returned unchanged.
func EvaluateExpression(input string) (float64, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return 0, err
	}
	postfix, err := ToPostfix(tokens)
	if err != nil {
		return 0, err
	}
	return Evaluate(postfix)
}
