package rig

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var rigsFS embed.FS

// Load reads a rig file by name. A file on disk under rig/ shadows the
// embedded copy so table and rig edits take effect without a rebuild.
func Load(name string) ([]byte, error) {
	clean := cleanRigPath(name)
	if data, err := os.ReadFile(diskRigPath(clean)); err == nil {
		return data, nil
	}
	return rigsFS.ReadFile(clean)
}

func cleanRigPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "rig/") {
		return strings.TrimPrefix(s, "rig/")
	}
	return s
}

func diskRigPath(clean string) string {
	return filepath.Join("rig", filepath.FromSlash(clean))
}
