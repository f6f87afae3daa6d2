package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/lox/loxconfigs"
	"github.com/reusee/lox/loxlang"
)

// runREPL scans each line independently; a lexical error only affects its own line.
// A non-nil tap is called after every successful scan.
func runREPL(
	ctx context.Context,
	scan loxlang.Scan,
	historyFile loxconfigs.HistoryFile,
	tap func(*loxlang.Source, []loxlang.Token),
) {
	config := &readline.Config{
		Prompt:      "> ",
		HistoryFile: string(historyFile),
	}
	rl, err := readline.NewEx(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer func() {
		if rl != nil {
			rl.Close()
		}
	}()

	for n := 1; ; n++ {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		source := loxlang.NewSource(fmt.Sprintf("<repl:%d>", n), []byte(line))
		tokens, err := scan(ctx, source)
		if err != nil {
			printError(os.Stderr, err)
			continue
		}
		printTokens(os.Stdout, tokens)

		if tap != nil {
			// the Starlark prompt needs the terminal to itself
			rl.Close()
			tap(source, tokens)
			rl, err = readline.NewEx(config)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				return
			}
		}
	}
}
