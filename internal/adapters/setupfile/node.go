package setupfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/specred/internal/core/ports"
)

const (
	// StoreNodeID is the unique identifier for the concrete file store Graft node.
	StoreNodeID graft.ID = "adapter.setupfile"
	// NodeID is the unique identifier for the setup store Graft node.
	NodeID graft.ID = "adapter.setup_store"
	// GroupWriterNodeID is the unique identifier for the group file writer Graft node.
	GroupWriterNodeID graft.ID = "adapter.group_writer"
)

func init() {
	// Store Node (Concrete implementation shared by both ports)
	graft.Register(graft.Node[*Store]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Store, error) {
			return NewStore("."), nil
		},
	})

	graft.Register(graft.Node[ports.SetupStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{StoreNodeID},
		Run: func(ctx context.Context) (ports.SetupStore, error) {
			store, err := graft.Dep[*Store](ctx)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})

	graft.Register(graft.Node[ports.GroupWriter]{
		ID:        GroupWriterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{StoreNodeID},
		Run: func(ctx context.Context) (ports.GroupWriter, error) {
			store, err := graft.Dep[*Store](ctx)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
