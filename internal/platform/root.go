package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrRootNotFound is returned when no vault root exists above a directory.
var ErrRootNotFound = errors.New("root not found")

// FindRoot recursively looks upwards for a directory containing systemDir
// (".jot" when empty) and returns its absolute path.
func FindRoot(startDir, systemDir string) (string, error) {
	if systemDir == "" {
		systemDir = DefaultSystemDir
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if isDir(filepath.Join(dir, systemDir)) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", ErrRootNotFound
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
