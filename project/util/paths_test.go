package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandUser(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	cases := map[string]string{
		"~":                  home,
		"~/settings.json":    filepath.Join(home, "settings.json"),
		"/tmp/out.mod":       "/tmp/out.mod",
		"relative/out.mod":   "relative/out.mod",
		"~no_such_user_x9/a": "~no_such_user_x9/a",
		"":                   "",
	}
	for in, want := range cases {
		if got := ExpandUser(in); got != want {
			t.Fatalf("ExpandUser(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExpandPathsSkipsStdin(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	in, out, empty := "-", "~/a.mod", ""
	ExpandPaths(&in, &out, &empty, nil)
	if in != "-" || empty != "" {
		t.Fatalf("unexpected expansion %q %q", in, empty)
	}
	if out != filepath.Join(home, "a.mod") {
		t.Fatalf("unexpected output path %q", out)
	}
}
