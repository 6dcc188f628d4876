// Package manifest persists the list of merged outputs as a JSON file.
package manifest

import (
	"encoding/json"
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/scriptmerge/internal/core/domain"
	"go.trai.ch/scriptmerge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Manifest = (*Store)(nil)

// Store implements ports.Manifest using a flat JSON file.
type Store struct {
	path    string
	mu      sync.RWMutex
	records map[string]domain.OutputRecord
}

// Open loads the manifest at path. A missing or empty file yields an empty store.
func Open(path string) (*Store, error) {
	s := &Store{
		path:    filepath.Clean(path),
		records: make(map[string]domain.OutputRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	//nolint:gosec // Path is cleaned and derived from the output directory
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	var records []domain.OutputRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", s.path)
	}
	for _, r := range records {
		s.records[r.Output] = r
	}
	return nil
}

// Save writes the records sorted by output path. An empty store removes the file.
func (s *Store) Save() error {
	s.mu.RLock()
	records := make([]domain.OutputRecord, 0, len(s.records))
	for _, key := range slices.Sorted(maps.Keys(s.records)) {
		records = append(records, s.records[key])
	}
	s.mu.RUnlock()

	if len(records) == 0 {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", s.path)
		}
		return nil
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", s.path)
	}

	//nolint:gosec // Path is cleaned and derived from the output directory
	if err := os.WriteFile(s.path, append(data, '\n'), domain.PrivateFilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", s.path)
	}
	return nil
}

// Get returns the record for output.
func (s *Store) Get(output string) (domain.OutputRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[output]
	return r, ok
}

// Put adds or replaces the record for record.Output.
func (s *Store) Put(record domain.OutputRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Output] = record
}

// Delete removes the record for output.
func (s *Store) Delete(output string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, output)
}

// Outputs returns the recorded output paths in sorted order.
func (s *Store) Outputs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.records))
}
