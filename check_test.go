package gocalc

import (
	"errors"
	"testing"
)

func TestCheckWellFormed(t *testing.T) {
	tests := []struct {
		input []Token
		want  error
	}{
		{input: []Token{Num(1)}, want: nil},
		{input: []Token{Num(1), Oper(Add), Num(2), Oper(Div), Num(3)}, want: nil},
		{input: []Token{}, want: ErrEmptyExpression},
		{input: []Token{Oper(Add)}, want: ErrInvalidOperator},
		{input: []Token{Oper(Sub), Num(1)}, want: ErrInvalidOperator},
		{input: []Token{Num(1), Oper(Mul)}, want: ErrInvalidOperator},
		{input: []Token{Num(1), Oper(Mul), Oper(Sub), Num(2)}, want: ErrConsecutiveOperators},
		{input: []Token{Num(1), Num(2)}, want: ErrInvalidNumber},
	}
	for _, test := range tests {
		err := CheckWellFormed(test.input)
		if test.want == nil {
			if err != nil {
				t.Errorf("%v: %v", Tokens(test.input), err)
			}
			continue
		}
		if !errors.Is(err, test.want) {
			t.Errorf("want %v for %v but got %v", test.want, Tokens(test.input), err)
		}
	}
}

func TestEvalStringStrict(t *testing.T) {
	if _, err := EvalString("3 + + 4", false); !errors.Is(err, ErrInvalidExpression) {
		t.Errorf("want %v but got %v", ErrInvalidExpression, err)
	}
	if _, err := EvalString("3 + + 4", true); !errors.Is(err, ErrConsecutiveOperators) {
		t.Errorf("want %v but got %v", ErrConsecutiveOperators, err)
	}
	if _, err := EvalString("   ", true); err != ErrEmptyExpression {
		t.Errorf("want %v but got %v", ErrEmptyExpression, err)
	}
}
