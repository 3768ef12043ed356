package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDevRun(t *testing.T) {
	assert.True(t, IsDevRun(), "test binaries count as dev runs")
}

func TestResolveRoot(t *testing.T) {
	devRoot := filepath.Join(os.TempDir(), "jot-dev")
	inTemp := t.TempDir()

	tests := []struct {
		name      string
		path      string
		forceTemp bool
		want      string
	}{
		{"No Force Keeps Path", "/home/me/notes", false, "/home/me/notes"},
		{"No Force Empty Is Dot", "", false, "."},
		{"Force Re-roots Outside Temp", "/home/me/notes", true, filepath.Join(devRoot, "notes")},
		{"Force Relative", "project", true, filepath.Join(devRoot, "project")},
		{"Force Dot", ".", true, filepath.Join(devRoot, "default")},
		{"Force Parent", "..", true, filepath.Join(devRoot, "default")},
		{"Force Empty", "", true, filepath.Join(devRoot, "default")},
		{"Force Trusts Temp Dir", inTemp, true, inTemp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRoot(tt.path, tt.forceTemp))
		})
	}
}
