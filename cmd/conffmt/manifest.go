package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// projectManifest is a discovered conffmt.toml with its location.
type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Format formatConfig `toml:"format"`
	Cache  cacheConfig  `toml:"cache"`
}

type formatConfig struct {
	// Indent is the number of spaces per nesting level; 0 keeps the
	// built-in default.
	Indent int `toml:"indent"`
	// Extensions lists file extensions collected when formatting
	// directories, e.g. [".conf", ".cfg"].
	Extensions []string `toml:"extensions"`
}

type cacheConfig struct {
	// Enabled toggles the canonical-result disk cache. Unset means on.
	Enabled *bool `toml:"enabled"`
}

func (c cacheConfig) enabled() bool {
	return c.Enabled == nil || *c.Enabled
}

func findConffmtToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "conffmt.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadProjectManifest walks parent directories from startDir looking for a
// conffmt.toml. A missing manifest is not an error; flags then run against
// built-in defaults.
func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findConffmtToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}

	var cfg projectConfig
	if _, err := toml.DecodeFile(manifestPath, &cfg); err != nil {
		return nil, true, fmt.Errorf("failed to parse %s: %w", manifestPath, err)
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}
