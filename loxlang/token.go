package loxlang

import (
	"fmt"
)

// Token is a classified, positioned lexeme.
// Start and End are inclusive byte offsets into the whole source buffer.
type Token struct {
	Type    TokenType
	Lexeme  string
	Line    int
	Start   int
	End     int
	Literal Literal
}

func (t Token) String() string {
	if t.Literal == nil {
		return fmt.Sprintf("%s %s", t.Type, t.Lexeme)
	}
	return fmt.Sprintf("%s %s %s", t.Type, t.Lexeme, t.Literal)
}
