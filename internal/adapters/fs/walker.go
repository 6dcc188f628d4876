// Package fs provides file system adapters for reading, walking and hashing files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/scriptmerge/internal/core/ports"
)

var _ ports.Walker = (*Walker)(nil)

// skippedDirectories are never descended into.
var skippedDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files below root in lexical order. Paths are joined with root.
// ignores are doublestar patterns matched against the slash-separated path relative
// to root; a matching directory is skipped entirely. Unreadable entries are skipped.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == root {
					return err
				}
				return nil //nolint:nilerr // unreadable entries are skipped
			}

			if path != root {
				if skip := w.shouldSkip(root, path, d, ignores); skip {
					if d.IsDir() {
						return filepath.SkipDir
					}
					return nil
				}
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// shouldSkip reports whether the entry is excluded by the built-in skip list or an ignore pattern.
func (w *Walker) shouldSkip(root, path string, d fs.DirEntry, ignores []string) bool {
	if d.IsDir() && skippedDirectories[d.Name()] {
		return true
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range ignores {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}
