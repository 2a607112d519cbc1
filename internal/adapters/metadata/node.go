package metadata

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/specred/internal/core/ports"
)

// NodeID is the unique identifier for the frame table loader Graft node.
const NodeID graft.ID = "adapter.metadata_loader"

func init() {
	graft.Register(graft.Node[ports.MetadataLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MetadataLoader, error) {
			return NewLoader(), nil
		},
	})
}
