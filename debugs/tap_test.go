package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/lox/loxlang"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", map[string]any{
			"tokens": []loxlang.Token{
				{Type: loxlang.Identifier, Lexeme: "a", Line: 1, Literal: loxlang.StringLiteral("a")},
			},
		})
	})
}
