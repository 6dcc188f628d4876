package ports

// Hasher computes content hashes used to skip rewriting identical outputs.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash hashes the content of the file at path.
	ComputeFileHash(path string) (uint64, error)
	// ComputeHash hashes data.
	ComputeHash(data []byte) uint64
}
