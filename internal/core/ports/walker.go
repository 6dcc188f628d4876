package ports

import "iter"

// Walker enumerates files below a directory.
//
//go:generate mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks
type Walker interface {
	// WalkFiles yields every file below root whose path, relative to root, matches
	// none of the ignore patterns.
	WalkFiles(root string, ignores []string) iter.Seq[string]
}
