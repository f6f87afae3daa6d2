package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/lox/cmds"
	"github.com/reusee/lox/debugs"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/loxconfigs"
	"github.com/reusee/lox/loxlang"
	"golang.org/x/term"
)

var (
	wrap = e5.Wrap.With(e5.WrapStacktrace)

	files   = cmds.Collect[string]("scan")
	tapFlag = cmds.Switch("-tap")
)

func init() {
	cmds.Define("repl", cmds.Func(func() {
		forceREPL = true
	}).Desc("start the interactive prompt"))
}

var forceREPL bool

func main() {
	logs.SetLevel(slog.LevelWarn)
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	if err := checkTap(*tapFlag, term.IsTerminal(int(os.Stdin.Fd()))); err != nil {
		printError(os.Stderr, err)
		os.Exit(2)
	}

	dscope.New(new(Module)).Call(func(
		scan loxlang.Scan,
		tap debugs.Tap,
		historyFile loxconfigs.HistoryFile,
		logger logs.Logger,
	) {
		tapTokens := func(source *loxlang.Source, tokens []loxlang.Token) {
			tap(ctx, source.Name, map[string]any{
				"source": string(source.Content),
				"tokens": tokens,
				"dump": func() {
					printTokens(os.Stdout, tokens)
				},
			})
		}
		if !*tapFlag {
			tapTokens = nil
		}

		run := func(source *loxlang.Source) bool {
			tokens, err := scan(ctx, source)
			if err != nil {
				printError(os.Stderr, err)
				return false
			}
			printTokens(os.Stdout, tokens)
			if tapTokens != nil {
				tapTokens(source, tokens)
			}
			return true
		}

		switch {

		case len(*files) > 0:
			ok := true
			for _, path := range *files {
				source, err := readSource(path)
				if err != nil {
					printError(os.Stderr, err)
					ok = false
					continue
				}
				logger.InfoContext(ctx, "scan file", "path", path)
				if !run(source) {
					ok = false
				}
			}
			if !ok {
				os.Exit(1)
			}

		case !forceREPL && !term.IsTerminal(int(os.Stdin.Fd())):
			content, err := io.ReadAll(os.Stdin)
			if err != nil {
				printError(os.Stderr, wrap(err))
				os.Exit(1)
			}
			if !run(loxlang.NewSource("<stdin>", content)) {
				os.Exit(1)
			}

		default:
			runREPL(ctx, scan, historyFile, tapTokens)

		}
	})
}

var errTapNeedsTerminal = errors.New("-tap needs stdin to be a terminal")

// checkTap rejects -tap when stdin is piped, since the Starlark prompt reads stdin.
func checkTap(tap bool, stdinIsTerminal bool) error {
	if tap && !stdinIsTerminal {
		return errTapNeedsTerminal
	}
	return nil
}

func readSource(path string) (*loxlang.Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap(err)
	}
	if len(content) > 0 {
		if mime := mimetype.Detect(content); !isText(mime) {
			return nil, fmt.Errorf("%s: not a text file (%s)", path, mime.String())
		}
	}
	return loxlang.NewSource(path, content), nil
}

func isText(mime *mimetype.MIME) bool {
	for m := mime; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

func printTokens(w io.Writer, tokens []loxlang.Token) {
	for _, token := range tokens {
		fmt.Fprintf(w, "%4d %4d-%-4d %s\n", token.Line, token.Start, token.End, token)
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
	var lexErr *loxlang.LexicalError
	if errors.As(err, &lexErr) {
		io.WriteString(w, lexErr.Snippet())
	}
}
