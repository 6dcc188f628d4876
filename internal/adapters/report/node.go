package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scriptmerge/internal/core/ports"
)

// NodeID is the unique identifier for the build reporter Graft node.
const NodeID graft.ID = "adapter.report"

func init() {
	graft.Register(graft.Node[ports.Reporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Reporter, error) {
			return NewRenderer(nil), nil
		},
	})
}
