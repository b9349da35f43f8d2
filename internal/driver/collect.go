package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// DefaultExtensions lists the file extensions collected when walking
// directories and none are configured.
var DefaultExtensions = []string{".conf"}

// CollectConfigFiles expands paths into a sorted, deduplicated list of
// config files. Directories are walked recursively, keeping files whose
// extension is in exts; explicit file arguments are kept regardless of
// extension.
func CollectConfigFiles(ctx context.Context, paths, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if d.IsDir() {
					return nil
				}
				if slices.Contains(exts, strings.ToLower(filepath.Ext(path))) {
					addFile(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		addFile(p)
	}

	sort.Strings(files)
	return files, nil
}
