package loxlang

import "sort"

// Source is one named unit of source text.
type Source struct {
	Name    string
	Content []byte

	lineStarts []int
}

func NewSource(name string, content []byte) *Source {
	lineStarts := []int{0}
	for i, c := range content {
		if c == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	return &Source{
		Name:       name,
		Content:    content,
		lineStarts: lineStarts,
	}
}

// Line returns the text of the 1-based line, without the trailing newline.
func (s *Source) Line(line int) (string, bool) {
	idx := line - 1
	if idx < 0 || idx >= len(s.lineStarts) {
		return "", false
	}
	start := s.lineStarts[idx]
	end := len(s.Content)
	if idx+1 < len(s.lineStarts) {
		end = s.lineStarts[idx+1] - 1
	}
	return string(s.Content[start:end]), true
}

// Column converts a buffer offset to a 0-based column within its line.
func (s *Source) Column(offset int) int {
	idx := sort.SearchInts(s.lineStarts, offset+1) - 1
	if idx < 0 {
		return offset
	}
	return offset - s.lineStarts[idx]
}

func (s *Source) NumLines() int {
	return len(s.lineStarts)
}

// EOFToken is the Eof token for source: on the last line, just past the last byte.
func EOFToken(source *Source) Token {
	if source == nil {
		return Token{
			Type: Eof,
			Line: 1,
		}
	}
	return Token{
		Type:  Eof,
		Line:  source.NumLines(),
		Start: len(source.Content),
		End:   len(source.Content),
	}
}
