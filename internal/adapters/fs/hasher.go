package fs

import (
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/scriptmerge/internal/core/domain"
	"go.trai.ch/scriptmerge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes XXHash digests of files and buffers.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeHash computes the XXHash of data.
func (h *Hasher) ComputeHash(data []byte) uint64 {
	return xxhash.Sum64(data)
}
