package gocalc

import (
	"fmt"
	"strings"
)

// Fn applies an operator to a, the earlier operand, and b.
type Fn func(a, b float64) (float64, error)

var ops map[Op]Fn

func init() {
	ops = make(map[Op]Fn)
	ops[Add] = doAdd
	ops[Sub] = doSub
	ops[Mul] = doMul
	ops[Div] = doDiv
}

func doAdd(a, b float64) (float64, error) {
	return a + b, nil
}

func doSub(a, b float64) (float64, error) {
	return a - b, nil
}

func doMul(a, b float64) (float64, error) {
	return a * b, nil
}

func doDiv(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// EvalPostfix reduces postfix tokens to a single value.
func EvalPostfix(tokens []Token) (float64, error) {
	var stack []float64
	for _, t := range tokens {
		switch t.Kind {
		case Number:
			stack = append(stack, t.Num)
		case Operator:
			fn, ok := ops[t.Op]
			if !ok {
				panic(fmt.Sprintf("gocalc: unknown operator %q", byte(t.Op)))
			}
			if len(stack) < 2 {
				return 0, &InvalidExpressionError{
					Token:  t.Op.String(),
					Reason: "not enough operands for operator",
				}
			}
			// a was pushed before b
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			v, err := fn(a, b)
			if err != nil {
				return 0, err
			}
			stack = append(stack, v)
		default:
			panic("gocalc: unknown token kind")
		}
	}
	if len(stack) != 1 {
		return 0, ErrTooManyOperators
	}
	return stack[0], nil
}

// Evaluate converts infix tokens to postfix and evaluates them.
func Evaluate(tokens []Token) (float64, error) {
	return EvalPostfix(ToPostfix(tokens))
}

// EvalString splits line on white space and runs it through the whole
// pipeline. With strict set, the tokens must also pass CheckWellFormed.
func EvalString(line string, strict bool) (float64, error) {
	tokens, err := Tokenize(strings.Fields(line))
	if err != nil {
		return 0, err
	}
	if strict {
		if err := CheckWellFormed(tokens); err != nil {
			return 0, err
		}
	}
	return Evaluate(tokens)
}
