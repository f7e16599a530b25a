package gocalc

import (
	"errors"
	"strconv"
	"strings"
)

// Kind tells which of the two token variants a Token holds.
type Kind int

const (
	Number Kind = iota
	Operator
)

// Op is one of the four binary operator symbols.
type Op byte

const (
	Add Op = '+'
	Sub Op = '-'
	Mul Op = '*'
	Div Op = '/'
)

func (op Op) String() string {
	return string(rune(op))
}

// Token is either a Number carrying Num or an Operator carrying Op.
type Token struct {
	Kind Kind
	Num  float64
	Op   Op
}

// Num returns a Number token.
func Num(v float64) Token {
	return Token{Kind: Number, Num: v}
}

func Oper(op Op) Token {
	return Token{Kind: Operator, Op: op}
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return strconv.FormatFloat(t.Num, 'f', -1, 64)
	case Operator:
		return t.Op.String()
	}
	return "?"
}

// Tokens prints a token sequence space separated.
type Tokens []Token

func (ts Tokens) String() string {
	var sb strings.Builder
	for i, t := range ts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.String())
	}
	return sb.String()
}

func isOperatorSymbol(s string) bool {
	return len(s) == 1 && strings.Contains("+-*/", s)
}

func parseNumber(s string) (float64, bool) {
	// decimal literals only
	if strings.ContainsRune(s, '_') {
		return 0, false
	}
	digits := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return f, true
	}
	// out of range literals saturate to +-Inf or 0
	var ne *strconv.NumError
	if errors.As(err, &ne) && ne.Err == strconv.ErrRange {
		return f, true
	}
	return 0, false
}

// Tokenize converts whitespace separated words into tokens. It does not
// check that the result is a well formed expression.
func Tokenize(raw []string) ([]Token, error) {
	tokens := make([]Token, 0, len(raw))
	for _, s := range raw {
		if f, ok := parseNumber(s); ok {
			tokens = append(tokens, Num(f))
		} else if isOperatorSymbol(s) {
			tokens = append(tokens, Oper(Op(s[0])))
		} else {
			return nil, &InvalidExpressionError{Token: s}
		}
	}
	if len(tokens) == 0 {
		return nil, ErrEmptyExpression
	}
	return tokens, nil
}
