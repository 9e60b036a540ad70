package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveRoot normalises a user-supplied docs folder path: file:// URIs
// are stripped, "~" expands to the home directory, and relative paths
// become absolute. The path does not have to exist.
func ResolveRoot(path string) (string, error) {
	path = strings.TrimPrefix(path, "file://")

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %s: %w", path, err)
	}
	return abs, nil
}
