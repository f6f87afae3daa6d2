package loxconfigs

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/lox/cmds"
	"github.com/reusee/lox/configs"
	"github.com/reusee/lox/logs"
)

func TestProviders(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{"testdata/lox.cue"}, Schema)
		},
	).Call(func(
		appendEOF AppendEOF,
		maxSourceBytes MaxSourceBytes,
		historyFile HistoryFile,
	) {
		if !appendEOF {
			t.Fatal()
		}
		if maxSourceBytes != 64 {
			t.Fatalf("got %v", maxSourceBytes)
		}
		if historyFile != "/tmp/lox-test-history" {
			t.Fatalf("got %v", historyFile)
		}
	})
}

func TestDefaults(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, Schema)
		},
	).Call(func(
		appendEOF AppendEOF,
		maxSourceBytes MaxSourceBytes,
	) {
		if appendEOF {
			t.Fatal()
		}
		if maxSourceBytes <= 0 {
			t.Fatalf("got %v", maxSourceBytes)
		}
	})
}

func TestFlagsOverride(t *testing.T) {
	defer func() {
		*appendEOFFlag = false
		*maxSourceBytesFlag = 0
		*historyFileFlag = ""
	}()
	if err := cmds.GlobalExecutor.Execute([]string{
		"-max-source-bytes", "16",
		"-history", "flag.history",
		"-eof",
	}); err != nil {
		t.Fatal(err)
	}
	dscope.New(new(Module)).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, Schema)
		},
	).Call(func(
		appendEOF AppendEOF,
		maxSourceBytes MaxSourceBytes,
		historyFile HistoryFile,
	) {
		if !appendEOF {
			t.Fatal()
		}
		if maxSourceBytes != 16 {
			t.Fatalf("got %v", maxSourceBytes)
		}
		if historyFile != "flag.history" {
			t.Fatalf("got %v", historyFile)
		}
	})
}

func TestHistoryFileSkipsEmpty(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{
				"testdata/empty_history.cue",
				"testdata/lox.cue",
			}, Schema)
		},
	).Call(func(
		historyFile HistoryFile,
	) {
		if historyFile != "/tmp/lox-test-history" {
			t.Fatalf("got %v", historyFile)
		}
	})
}

func TestConfigsLoader(t *testing.T) {
	t.Chdir("testdata")
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() logs.Writer {
			return buf
		},
	).Call(func(
		loader configs.Loader,
	) {
		paths, err := loader.Paths()
		if err != nil {
			t.Fatal(err)
		}
		if len(paths) == 0 || filepath.Base(paths[0]) != "lox.cue" {
			t.Fatalf("got %v", paths)
		}
		if n := configs.First[int](loader, "max_source_bytes"); n != 64 {
			t.Fatalf("got %v", n)
		}
	})
	if !strings.Contains(buf.String(), "config files") || !strings.Contains(buf.String(), "lox.cue") {
		t.Fatalf("got %v", buf.String())
	}
}

func TestConfigsLoaderInvalid(t *testing.T) {
	t.Chdir("testdata/bad")
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() logs.Writer {
			return buf
		},
	).Call(func(
		loader configs.Loader,
	) {
		if _, err := loader.Paths(); err == nil {
			t.Fatal("should error")
		}
	})
	if !strings.Contains(buf.String(), "load config files") {
		t.Fatalf("got %v", buf.String())
	}
}
