package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// IsDevRun checks if the current process is running via `go run` or `go test`.
// It relies on the fact that these commands build binaries in temporary directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(os.TempDir())) {
		return true
	}

	return strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe")
}

// ResolveRoot determines the actual vault root based on safety rules.
// With forceTemp, paths outside the system temp directory are re-rooted into
// a namespaced temp directory so dev runs never touch real notes.
func ResolveRoot(userPath string, forceTemp bool) string {
	if !forceTemp {
		if userPath == "" {
			return "."
		}
		return userPath
	}

	// Paths already under the temp dir (t.TempDir()) are trusted as is.
	cleanUserPath := filepath.Clean(userPath)
	if filepath.IsAbs(cleanUserPath) {
		rel, err := filepath.Rel(os.TempDir(), cleanUserPath)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
			return cleanUserPath
		}
	}

	subName := filepath.Base(cleanUserPath)
	if userPath == "" || subName == "." || subName == ".." || subName == string(os.PathSeparator) {
		subName = "default"
	}

	return filepath.Join(os.TempDir(), "jot-dev", subName)
}
