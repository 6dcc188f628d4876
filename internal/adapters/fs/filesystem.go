package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/scriptmerge/internal/core/ports"
)

var (
	_ ports.FileSystem = (*OSFS)(nil)
	_ ports.FileSystem = (*MapFSAdapter)(nil)
)

// OSFS implements ports.FileSystem using the standard library.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Stat returns file info for the given path.
func (o *OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the entire file at path.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path is validated by caller
	return os.ReadFile(path)
}

// WalkDir walks the tree rooted at root.
func (o *OSFS) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

// MapFSAdapter adapts an fs.FS such as fstest.MapFS to ports.FileSystem for testing.
// Absolute paths below Root are mapped onto the wrapped filesystem.
type MapFSAdapter struct {
	FS   fs.FS
	Root string // simulated root path
}

// NewMapFSAdapter creates a new MapFSAdapter with the given root path and filesystem.
func NewMapFSAdapter(root string, fsys fs.FS) *MapFSAdapter {
	return &MapFSAdapter{
		FS:   fsys,
		Root: filepath.Clean(root),
	}
}

// Stat returns file info for the given path.
func (m *MapFSAdapter) Stat(path string) (fs.FileInfo, error) {
	return fs.Stat(m.FS, m.toRelPath(path))
}

// ReadFile reads the entire file at path.
func (m *MapFSAdapter) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(m.FS, m.toRelPath(path))
}

// WalkDir walks the tree rooted at root, reporting paths below Root.
func (m *MapFSAdapter) WalkDir(root string, fn fs.WalkDirFunc) error {
	rel := m.toRelPath(root)
	return fs.WalkDir(m.FS, rel, func(path string, d fs.DirEntry, err error) error {
		return fn(m.toAbsPath(path), d, err)
	})
}

// toRelPath converts an absolute path to a slash-separated path within the filesystem.
// If the path is outside the root, it returns the path unchanged, which will cause
// downstream fs operations to fail with "file not found" errors.
func (m *MapFSAdapter) toRelPath(absPath string) string {
	if !filepath.IsAbs(absPath) {
		return filepath.ToSlash(absPath)
	}

	absPath = filepath.Clean(absPath)
	if absPath == m.Root {
		return "."
	}

	// Special case: if root is "/", all absolute paths are within root
	if m.Root != string(filepath.Separator) && !strings.HasPrefix(absPath, m.Root+string(filepath.Separator)) {
		return absPath
	}

	rel := strings.TrimPrefix(absPath, m.Root)
	rel = strings.TrimPrefix(rel, string(filepath.Separator))
	return filepath.ToSlash(rel)
}

func (m *MapFSAdapter) toAbsPath(relPath string) string {
	if relPath == "." {
		return m.Root
	}
	return filepath.Join(m.Root, filepath.FromSlash(relPath))
}
