package ports

import "go.trai.ch/scriptmerge/internal/core/domain"

// Manifest records the outputs written into one output directory.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type Manifest interface {
	// Get returns the record for an output path relative to the output directory.
	Get(output string) (domain.OutputRecord, bool)
	// Put adds or replaces a record. Safe for concurrent use.
	Put(record domain.OutputRecord)
	// Delete removes the record for output.
	Delete(output string)
	// Outputs returns the recorded output paths in sorted order.
	Outputs() []string
	// Save persists the records.
	Save() error
}

// ManifestFactory opens the manifest stored at path. A missing file yields an empty manifest.
type ManifestFactory func(path string) (Manifest, error)
