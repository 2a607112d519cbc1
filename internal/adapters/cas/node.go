package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/specred/internal/core/domain"
	"go.trai.ch/specred/internal/core/ports"
)

// NodeID is the unique identifier for the master frame store Graft node.
const NodeID graft.ID = "adapter.master_store"

func init() {
	graft.Register(graft.Node[ports.MasterStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MasterStore, error) {
			return NewStore(domain.DefaultMastersPath()), nil
		},
	})
}
