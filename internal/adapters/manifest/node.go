package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scriptmerge/internal/core/ports"
)

// NodeID is the unique identifier for the manifest factory Graft node.
const NodeID graft.ID = "adapter.manifest"

func init() {
	graft.Register(graft.Node[ports.ManifestFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestFactory, error) {
			return Factory, nil
		},
	})
}

// Factory opens the manifest at path as a ports.Manifest.
func Factory(path string) (ports.Manifest, error) {
	s, err := Open(path)
	if err != nil {
		return nil, err
	}
	return s, nil
}
