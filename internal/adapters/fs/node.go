package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scriptmerge/internal/core/ports"
)

const (
	// FileSystemNodeID is the unique identifier for the OS filesystem Graft node.
	FileSystemNodeID graft.ID = "adapter.fs.os"
	// WalkerNodeID is the unique identifier for the file walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// HasherNodeID is the unique identifier for the hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.FileSystem]{
		ID:        FileSystemNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileSystem, error) {
			return NewOSFS(), nil
		},
	})

	graft.Register(graft.Node[ports.Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
