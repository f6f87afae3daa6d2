package loxlang

import (
	"fmt"
	"strconv"
)

type Options struct {
	// AppendEOF appends an Eof token after the last scanned token.
	AppendEOF bool
}

// Scanner walks a byte buffer once and produces tokens.
// A Scanner is single-use: Scan consumes it.
type Scanner struct {
	source   *Source
	options  Options
	line     int
	position int
	consumed bool
}

func NewScanner(source []byte) (*Scanner, error) {
	return NewSourceScanner(NewSource("", source), Options{})
}

func NewSourceScanner(source *Source, options Options) (*Scanner, error) {
	if source == nil || len(source.Content) == 0 {
		return nil, ErrEmptySource
	}
	return &Scanner{
		source:  source,
		options: options,
		line:    1,
	}, nil
}

// Scan returns every token in source order, or the first lexical fault.
func (s *Scanner) Scan() ([]Token, error) {
	if s.consumed {
		return nil, ErrScannerConsumed
	}
	s.consumed = true

	src := s.source.Content
	var tokens []Token
	for s.position < len(src) {
		c := src[s.position]
		switch c {

		case '(':
			tokens = append(tokens, s.single(LeftParen))
		case ')':
			tokens = append(tokens, s.single(RightParen))
		case '{':
			tokens = append(tokens, s.single(LeftBrace))
		case '}':
			tokens = append(tokens, s.single(RightBrace))
		case ',':
			tokens = append(tokens, s.single(Comma))
		case '.':
			tokens = append(tokens, s.single(Dot))
		case '-':
			tokens = append(tokens, s.single(Minus))
		case '+':
			tokens = append(tokens, s.single(Plus))
		case ';':
			tokens = append(tokens, s.single(Semicolon))
		case '*':
			tokens = append(tokens, s.single(Star))

		case '!':
			tokens = append(tokens, s.oneOrTwo(Bang, BangEq))
		case '=':
			tokens = append(tokens, s.oneOrTwo(Eq, EqEq))
		case '<':
			tokens = append(tokens, s.oneOrTwo(Lt, Lte))
		case '>':
			tokens = append(tokens, s.oneOrTwo(Gt, Gte))

		case '/':
			if s.peek() == '/' {
				s.skipComment()
			} else {
				tokens = append(tokens, s.single(Slash))
			}

		case '"':
			token, err := s.scanString()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)

		case ' ', '\r', '\t':
			s.position++

		case '\n':
			s.line++
			s.position++

		default:
			switch {
			case isDigit(c):
				tokens = append(tokens, s.scanNumber())
			case isAlpha(c):
				tokens = append(tokens, s.scanIdentifier())
			default:
				return nil, s.errorAt(
					InvalidCharacter,
					fmt.Sprintf("invalid character %q", c),
					s.line,
					s.position,
				)
			}

		}
	}

	if s.options.AppendEOF {
		tokens = append(tokens, EOFToken(s.source))
	}

	return tokens, nil
}

// peek returns the byte after the cursor, or 0 at the end of the buffer.
func (s *Scanner) peek() byte {
	if s.position+1 >= len(s.source.Content) {
		return 0
	}
	return s.source.Content[s.position+1]
}

func (s *Scanner) single(t TokenType) Token {
	token := Token{
		Type:   t,
		Lexeme: string(s.source.Content[s.position]),
		Line:   s.line,
		Start:  s.position,
		End:    s.position,
	}
	s.position++
	return token
}

func (s *Scanner) oneOrTwo(one, two TokenType) Token {
	if s.peek() != '=' {
		return s.single(one)
	}
	token := Token{
		Type:   two,
		Lexeme: string(s.source.Content[s.position : s.position+2]),
		Line:   s.line,
		Start:  s.position,
		End:    s.position + 1,
	}
	s.position += 2
	return token
}

// skipComment stops at the newline so the main loop counts it.
func (s *Scanner) skipComment() {
	src := s.source.Content
	for s.position < len(src) && src[s.position] != '\n' {
		s.position++
	}
}

func (s *Scanner) scanString() (Token, error) {
	src := s.source.Content
	startLine := s.line
	start := s.position

	s.position++
	for {
		if s.position >= len(src) {
			return Token{}, s.errorAt(
				UnterminatedString,
				"unterminated string",
				startLine,
				start,
			)
		}
		c := src[s.position]
		if c == '"' {
			break
		}
		if c == '\n' {
			s.line++
		}
		s.position++
	}

	text := string(src[start+1 : s.position])
	token := Token{
		Type:    String,
		Lexeme:  text,
		Line:    startLine,
		Start:   start,
		End:     s.position,
		Literal: StringLiteral(text),
	}
	s.position++
	return token, nil
}

func (s *Scanner) scanNumber() Token {
	src := s.source.Content
	start := s.position
	seenDot := false
	for s.position < len(src) {
		c := src[s.position]
		if isDigit(c) {
			s.position++
			continue
		}
		if c == '.' && !seenDot && isDigit(s.peek()) {
			seenDot = true
			s.position++
			continue
		}
		break
	}

	text := string(src[start:s.position])
	// digit runs always parse; values beyond float64 range saturate to Inf
	value, _ := strconv.ParseFloat(text, 64)
	return Token{
		Type:    Number,
		Lexeme:  text,
		Line:    s.line,
		Start:   start,
		End:     s.position - 1,
		Literal: NumberLiteral(value),
	}
}

func (s *Scanner) scanIdentifier() Token {
	src := s.source.Content
	start := s.position
	for s.position < len(src) && isAlphaNumeric(src[s.position]) {
		s.position++
	}

	text := string(src[start:s.position])
	token := Token{
		Type:   Identifier,
		Lexeme: text,
		Line:   s.line,
		Start:  start,
		End:    s.position - 1,
	}
	if t, ok := LookupKeyword(text); ok {
		token.Type = t
	} else {
		token.Literal = StringLiteral(text)
	}
	return token
}

func (s *Scanner) errorAt(kind ErrorKind, message string, line int, position int) *LexicalError {
	return &LexicalError{
		Kind:     kind,
		Message:  message,
		Line:     line,
		Position: position,
		Source:   s.source,
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
