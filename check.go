package gocalc

import "fmt"

// CheckWellFormed reports whether tokens alternate number, operator, number,
// ..., starting and ending with a number. Tokenize and Evaluate never call
// it; callers that want a strict grammar run it between the two.
func CheckWellFormed(tokens []Token) error {
	if len(tokens) == 0 {
		return ErrEmptyExpression
	}
	for i, t := range tokens {
		switch t.Kind {
		case Number:
			if i > 0 && tokens[i-1].Kind == Number {
				return &InvalidNumberError{Num: t.Num, Pos: i}
			}
		case Operator:
			if i == 0 || i == len(tokens)-1 {
				return &InvalidOperatorError{Op: t.Op, Pos: i}
			}
			if tokens[i-1].Kind == Operator {
				return fmt.Errorf("%w: %s %s", ErrConsecutiveOperators, tokens[i-1].Op, t.Op)
			}
		}
	}
	return nil
}
