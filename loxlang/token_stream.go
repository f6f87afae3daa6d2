package loxlang

// TokenStream is what a parser consumes.
type TokenStream interface {
	Current() (Token, error)
	Consume()
}

// SliceTokenStream yields an Eof token once the slice is exhausted.
type SliceTokenStream struct {
	source *Source
	tokens []Token
	idx    int
}

var _ TokenStream = new(SliceTokenStream)

// NewSliceTokenStream streams tokens scanned from source.
func NewSliceTokenStream(source *Source, tokens []Token) *SliceTokenStream {
	return &SliceTokenStream{
		source: source,
		tokens: tokens,
	}
}

func (s *SliceTokenStream) Current() (Token, error) {
	if s.idx >= len(s.tokens) {
		return EOFToken(s.source), nil
	}
	return s.tokens[s.idx], nil
}

func (s *SliceTokenStream) Consume() {
	if s.idx < len(s.tokens) && s.tokens[s.idx].Type != Eof {
		s.idx++
	}
}
