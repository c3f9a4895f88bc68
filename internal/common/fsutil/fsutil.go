package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome expands a leading "~" or "~/" to the user's home directory.
// Other forms such as "~user/x" are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}

// CheckModelFile reports why path cannot be opened as a model file, or nil.
func CheckModelFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("model path is empty")
	}
	fi, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("model file not found: %s", path)
	}
	if err != nil {
		return fmt.Errorf("stat model file: %w", err)
	}
	if fi.IsDir() {
		return fmt.Errorf("model path is a directory: %s", path)
	}
	return nil
}
