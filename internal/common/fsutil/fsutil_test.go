package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", home)
	}
	cases := map[string]string{
		"/tmp":                 "/tmp",
		"":                     "",
		"~":                    home,
		"~/models/llm/a.gguf":  filepath.Join(home, "models/llm/a.gguf"),
		"~other/models/x.gguf": "~other/models/x.gguf",
		"~models":              "~models",
	}
	for in, want := range cases {
		got, err := ExpandHome(in)
		if err != nil || got != want {
			t.Fatalf("ExpandHome(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
}

func TestCheckModelFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "m.gguf")
	if err := os.WriteFile(p, []byte("gguf"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := CheckModelFile(p); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	for in, want := range map[string]string{
		"   ":                           "empty",
		filepath.Join(dir, "nope.gguf"): "not found",
		dir:                             "directory",
	} {
		err := CheckModelFile(in)
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Fatalf("CheckModelFile(%q) = %v; want error containing %q", in, err, want)
		}
	}
}
