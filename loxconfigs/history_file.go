package loxconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/lox/cmds"
	"github.com/reusee/lox/configs"
)

// HistoryFile is where the REPL keeps its line history. Empty disables history,
// which only happens when no home directory is known.
type HistoryFile string

var historyFileFlag = cmds.Var[string]("-history")

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	if *historyFileFlag != "" {
		return HistoryFile(*historyFileFlag)
	}
	// an empty history_file does not mask less specific files
	for path := range configs.All[string](loader, "history_file") {
		if path != "" {
			return HistoryFile(path)
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		return HistoryFile(filepath.Join(home, ".lox_history"))
	}
	return ""
}
