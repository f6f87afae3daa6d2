package loxlang

import "strconv"

type TokenType uint8

const (
	// single character
	LeftParen TokenType = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// one or two characters
	Bang
	BangEq
	Eq
	EqEq
	Gt
	Gte
	Lt
	Lte

	// literals
	Identifier
	String
	Number

	// keywords
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	Eof
)

var tokenTypeNames = [...]string{
	LeftParen:  "LeftParen",
	RightParen: "RightParen",
	LeftBrace:  "LeftBrace",
	RightBrace: "RightBrace",
	Comma:      "Comma",
	Dot:        "Dot",
	Minus:      "Minus",
	Plus:       "Plus",
	Semicolon:  "Semicolon",
	Slash:      "Slash",
	Star:       "Star",
	Bang:       "Bang",
	BangEq:     "BangEq",
	Eq:         "Eq",
	EqEq:       "EqEq",
	Gt:         "Gt",
	Gte:        "Gte",
	Lt:         "Lt",
	Lte:        "Lte",
	Identifier: "Identifier",
	String:     "String",
	Number:     "Number",
	And:        "And",
	Class:      "Class",
	Else:       "Else",
	False:      "False",
	Fun:        "Fun",
	For:        "For",
	If:         "If",
	Nil:        "Nil",
	Or:         "Or",
	Print:      "Print",
	Return:     "Return",
	Super:      "Super",
	This:       "This",
	True:       "True",
	Var:        "Var",
	While:      "While",
	Eof:        "Eof",
}

func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}

// HasLiteral reports whether tokens of this type carry a Literal.
func (t TokenType) HasLiteral() bool {
	return t == Identifier || t == String || t == Number
}

func (t TokenType) IsKeyword() bool {
	return t >= And && t <= While
}

var keywords = map[string]TokenType{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

func LookupKeyword(text string) (TokenType, bool) {
	t, ok := keywords[text]
	return t, ok
}
