package ports

import "io/fs"

// FileSystem abstracts the read-only filesystem operations used by the resolver,
// the splicer and the config loader.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Stat returns file info for the given path.
	Stat(path string) (fs.FileInfo, error)
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// WalkDir walks the tree rooted at root in lexical order, calling fn for each entry.
	// Paths passed to fn are joined with root.
	WalkDir(root string, fn fs.WalkDirFunc) error
}
