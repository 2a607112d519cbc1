package setup

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/specred/internal/adapters/fs" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/specred/internal/core/ports"
)

// NodeID is the unique identifier for the setup registry Graft node.
const NodeID graft.ID = "engine.setup"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (*Registry, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(hasher), nil
		},
	})
}
