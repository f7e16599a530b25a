package gocalc

func precedence(op Op) int {
	switch op {
	case Add, Sub:
		return 1
	case Mul, Div:
		return 2
	}
	return 0
}

// ToPostfix reorders infix tokens into postfix order. Operators of equal
// precedence are emitted left to right, so "a - b - c" becomes "a b - c -".
func ToPostfix(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	var stack []Op
	for _, t := range tokens {
		switch t.Kind {
		case Number:
			out = append(out, t)
		case Operator:
			p := precedence(t.Op)
			for len(stack) > 0 && precedence(stack[len(stack)-1]) >= p {
				out = append(out, Oper(stack[len(stack)-1]))
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, t.Op)
		default:
			panic("gocalc: unknown token kind")
		}
	}
	for len(stack) > 0 {
		out = append(out, Oper(stack[len(stack)-1]))
		stack = stack[:len(stack)-1]
	}
	return out
}
