// Package pathutil has small filesystem path helpers shared by the config
// and journal packages.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandUser replaces a leading ~ with the current user's home directory.
// Paths without the shorthand are returned unchanged, as is the input when
// the home directory cannot be determined.
func ExpandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// Exists reports whether the path exists on the filesystem.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
