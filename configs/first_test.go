package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test2.cue",
		"testdata/test.cue",
	}, testSchema)

	if str := First[string](loader, "history_file"); str != "second.history" {
		t.Fatalf("got %v", str)
	}
	if b := First[bool](loader, "append_eof"); b {
		t.Fatalf("got %v", b)
	}
	if n := First[int](loader, "max_source_bytes"); n != 1024 {
		t.Fatalf("got %v", n)
	}
	if n := First[int](loader, "not_defined"); n != 0 {
		t.Fatalf("got %v", n)
	}
}

func TestFirstNoFiles(t *testing.T) {
	loader := NewLoader(nil, testSchema)
	if str := First[string](loader, "history_file"); str != "" {
		t.Fatalf("got %v", str)
	}
}
