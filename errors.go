package gocalc

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyExpression   = errors.New("no valid tokens found in the expression")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrTooManyOperators  = errors.New("too many operands left on the stack")
	ErrInvalidExpression = errors.New("invalid expression")

	// Reported only by CheckWellFormed.
	ErrConsecutiveOperators = errors.New("consecutive operators")
	ErrInvalidOperator      = errors.New("invalid operator")
	ErrInvalidNumber        = errors.New("invalid number")
)

// InvalidExpressionError reports a word that is neither a number nor an
// operator, or an operator that found fewer than two operands.
type InvalidExpressionError struct {
	Token  string
	Reason string
}

func (e *InvalidExpressionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Reason, e.Token)
	}
	return fmt.Sprintf("invalid token: %s", e.Token)
}

func (e *InvalidExpressionError) Is(target error) bool {
	return target == ErrInvalidExpression
}

// InvalidOperatorError reports an operator at the start or end of an
// expression.
type InvalidOperatorError struct {
	Op  Op
	Pos int
}

func (e *InvalidOperatorError) Error() string {
	return fmt.Sprintf("operator %s at position %d has no operand", e.Op, e.Pos)
}

func (e *InvalidOperatorError) Is(target error) bool {
	return target == ErrInvalidOperator
}

// InvalidNumberError reports a number that directly follows another number.
type InvalidNumberError struct {
	Num float64
	Pos int
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("number %s at position %d is missing an operator", Num(e.Num), e.Pos)
}

func (e *InvalidNumberError) Is(target error) bool {
	return target == ErrInvalidNumber
}
