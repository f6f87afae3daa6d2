package loxlang

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/dscope"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/loxconfigs"
)

type Module struct {
	dscope.Module
	Configs loxconfigs.Module
}

// Scan scans one source with the configured options, logging under a new span.
type Scan func(ctx context.Context, source *Source) ([]Token, error)

func (Module) Scan(
	logger logs.Logger,
	newSpan logs.NewSpan,
	appendEOF loxconfigs.AppendEOF,
	maxSourceBytes loxconfigs.MaxSourceBytes,
) Scan {
	return func(ctx context.Context, source *Source) ([]Token, error) {
		ctx, _ = newSpan(ctx, "")

		if source == nil {
			return nil, ErrEmptySource
		}

		if maxSourceBytes > 0 && len(source.Content) > int(maxSourceBytes) {
			return nil, logs.WrapSpan(ctx, fmt.Errorf(
				"%w: %s has %d bytes, limit is %d",
				ErrSourceTooLarge, source.Name, len(source.Content), maxSourceBytes,
			))
		}

		scanner, err := NewSourceScanner(source, Options{
			AppendEOF: bool(appendEOF),
		})
		if err != nil {
			return nil, err
		}

		tokens, err := scanner.Scan()
		if err != nil {
			if lexErr := new(LexicalError); errors.As(err, &lexErr) {
				logger.InfoContext(ctx, "lexical error",
					"source", source.Name,
					"kind", lexErr.Kind.String(),
					"line", lexErr.Line,
					"position", lexErr.Position,
				)
			}
			return nil, err
		}

		logger.DebugContext(ctx, "scanned",
			"source", source.Name,
			"bytes", len(source.Content),
			"tokens", len(tokens),
		)
		return tokens, nil
	}
}
