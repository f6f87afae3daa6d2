package loxlang

import "strconv"

// Literal is the decoded value carried by String, Number and Identifier tokens.
type Literal interface {
	String() string
	isLiteral()
}

type NumberLiteral float64

var _ Literal = NumberLiteral(0)

func (NumberLiteral) isLiteral() {}

func (n NumberLiteral) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

type StringLiteral string

var _ Literal = StringLiteral("")

func (StringLiteral) isLiteral() {}

func (s StringLiteral) String() string {
	return string(s)
}
