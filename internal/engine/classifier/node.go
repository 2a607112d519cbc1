package classifier

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/specred/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/specred/internal/core/ports"
)

// NodeID is the unique identifier for the classifier Graft node.
const NodeID graft.ID = "engine.classifier"

func init() {
	graft.Register(graft.Node[*Classifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Classifier, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
