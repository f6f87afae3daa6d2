package loxconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/lox/configs"
	"github.com/reusee/lox/logs"
)

//go:embed schema.cue
var Schema string

var fileNames = []string{
	"lox.cue",
	".lox.cue",
}

// ConfigPaths lists existing config files, most specific first.
func ConfigPaths() (paths []string) {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, name := range fileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	loader := configs.NewLoader(ConfigPaths(), Schema)
	paths, err := loader.Paths()
	if err != nil {
		logger.Warn("load config files", "error", err)
	} else if len(paths) > 0 {
		logger.Info("config files", "paths", paths)
	}
	return loader
}
