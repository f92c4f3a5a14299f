package resolve

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ScanHit is a file or directory an exclusion pattern keeps out of the
// module graph.
type ScanHit struct {
	Path    string `json:"path" yaml:"path"`
	Pattern string `json:"pattern" yaml:"pattern"`
}

// Scan walks root and reports every path the exclusion set matches.
// Paths are matched and reported relative to root. Matched directories
// are reported once and not descended into; node_modules is skipped.
func Scan(fsys afero.Fs, root string, set ExclusionSet) ([]ScanHit, error) {
	var hits []ScanHit
	err := afero.Walk(fsys, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil || rel == "." {
			return err
		}
		rel = filepath.ToSlash(rel)

		if info.IsDir() && info.Name() == "node_modules" {
			return filepath.SkipDir
		}
		if pattern, ok := set.Match(rel); ok {
			hits = append(hits, ScanHit{Path: rel, Pattern: pattern.Name})
			if info.IsDir() {
				return filepath.SkipDir
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return hits, nil
}
