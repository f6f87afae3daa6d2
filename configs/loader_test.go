package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
append_eof?: bool
max_source_bytes?: int & >=0
history_file?: string
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)

	var appendEOF bool
	if err := loader.AssignFirst("append_eof", &appendEOF); err != nil {
		t.Fatal(err)
	}
	if !appendEOF {
		t.Fatal()
	}

	var max int
	if err := loader.AssignFirst("max_source_bytes", &max); err != nil {
		t.Fatal(err)
	}
	if max != 1024 {
		t.Fatalf("got %v", max)
	}

	err := loader.AssignFirst("not", &max)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test.cue",
		"testdata/test2.cue",
	}, testSchema)

	var strs []string
	for value, err := range loader.IterCueValues("history_file") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		strs = append(strs, s)
	}
	if str := fmt.Sprintf("%v", strs); str != "[first.history second.history]" {
		t.Fatalf("got %q", str)
	}

	strs = strs[:0]
	for str := range All[string](loader, "history_file") {
		strs = append(strs, str)
	}
	if str := fmt.Sprintf("%v", strs); str != "[first.history second.history]" {
		t.Fatalf("got %q", str)
	}

	// only the first file defines it
	var maxes []int
	for n := range All[int](loader, "max_source_bytes") {
		maxes = append(maxes, n)
	}
	if str := fmt.Sprintf("%v", maxes); str != "[1024]" {
		t.Fatalf("got %q", str)
	}

	paths, err := loader.Paths()
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %v", paths)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
}

func TestInvalidValue(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/invalid.cue",
	}, testSchema)
	var n int
	if err := loader.AssignFirst("max_source_bytes", &n); err == nil {
		t.Fatal("should error")
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/not-exists.cue",
	}, testSchema)
	var n int
	err := loader.AssignFirst("max_source_bytes", &n)
	if err == nil || errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}
