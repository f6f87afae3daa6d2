package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/lox/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a Starlark REPL on stdin with globals bound, returning when the REPL ends.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		names := slices.Sorted(maps.Keys(globals))
		logger.InfoContext(ctx, "tap: "+what, "globals", names)
		defer logger.InfoContext(ctx, "tap end: "+what)

		predeclared := make(starlark.StringDict, len(globals))
		for name, value := range globals {
			predeclared[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: "tap " + what,
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, predeclared)
	}
}
