package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// candidateNames are tried, in order, in each directory during discovery.
var candidateNames = []string{
	"workbench.yaml",
	"workbench.yml",
	".workbench.yaml",
	".workbench.yml",
}

// Discover walks from startDir toward the filesystem root, returning the
// path to the first matching config file found. Failing that, it falls
// back to a user-level config under the XDG config home. If override is
// non-empty, it is used instead of discovery and must resolve to a file or
// a symlink to a file.
func Discover(startDir string, override string) (string, error) {
	if override != "" {
		info, err := os.Stat(override)
		if err != nil {
			return "", fmt.Errorf("resolving configuration override %s: %w", override, err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("configuration override %s is a directory, not a file", override)
		}
		return override, nil
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving start directory: %w", err)
	}

	for {
		for _, name := range candidateNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	for _, name := range candidateNames {
		candidate := filepath.Join(xdg.ConfigHome, "workbench", name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("no workbench configuration found starting from %s", startDir)
}
