package loxlang

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptySource     = errors.New("cannot create a scanner with empty source")
	ErrScannerConsumed = errors.New("scanner already consumed")
	ErrSourceTooLarge  = errors.New("source too large")

	ErrInvalidCharacter   = errors.New("invalid character")
	ErrUnterminatedString = errors.New("unterminated string")
)

type ErrorKind uint8

const (
	InvalidCharacter ErrorKind = iota + 1
	UnterminatedString
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidCharacter:
		return "InvalidCharacter"
	case UnterminatedString:
		return "UnterminatedString"
	}
	return "Unknown"
}

// LexicalError describes the single fault that aborted a scan.
// Position is a byte offset into the whole buffer.
type LexicalError struct {
	Kind     ErrorKind
	Message  string
	Line     int
	Position int
	Source   *Source
}

var _ error = new(LexicalError)

func (e *LexicalError) Error() string {
	if e.Source != nil && e.Source.Name != "" {
		return fmt.Sprintf("%s: %s at line %d, position %d", e.Source.Name, e.Message, e.Line, e.Position)
	}
	return fmt.Sprintf("%s at line %d, position %d", e.Message, e.Line, e.Position)
}

func (e *LexicalError) Unwrap() error {
	switch e.Kind {
	case InvalidCharacter:
		return ErrInvalidCharacter
	case UnterminatedString:
		return ErrUnterminatedString
	}
	return nil
}

// Snippet renders the faulting line with a caret under the faulting byte.
func (e *LexicalError) Snippet() string {
	if e.Source == nil {
		return ""
	}
	line, ok := e.Source.Line(e.Line)
	if !ok {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(line)
	sb.WriteString("\n")
	col := e.Source.Column(e.Position)
	for i := 0; i < col && i < len(line); i++ {
		if line[i] == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	sb.WriteString("^\n")
	return sb.String()
}
