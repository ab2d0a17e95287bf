package util

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// ExpandUser replaces a leading ~ or ~name with that user's home directory.
// Paths it cannot resolve come back unchanged.
func ExpandUser(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	name, rest, _ := strings.Cut(path[1:], "/")

	var home string
	if name == "" {
		home, _ = os.UserHomeDir()
	} else if u, err := user.Lookup(name); err == nil {
		home = u.HomeDir
	}
	if home == "" {
		return path
	}
	return filepath.Join(home, rest)
}

// ExpandPaths expands every non-empty path in place.
func ExpandPaths(paths ...*string) {
	for _, p := range paths {
		if p != nil && *p != "" && *p != "-" {
			*p = ExpandUser(*p)
		}
	}
}
