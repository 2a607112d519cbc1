package science

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/specred/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/specred/internal/adapters/matcher"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/specred/internal/adapters/setupfile" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/specred/internal/core/ports"
	"go.trai.ch/specred/internal/engine/classifier"
	"go.trai.ch/specred/internal/engine/setup"
)

// NodeID is the unique identifier for the science builder Graft node.
const NodeID graft.ID = "engine.science"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			classifier.NodeID,
			setup.NodeID,
			matcher.NodeID,
			setupfile.NodeID,
			setupfile.GroupWriterNodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cls, err := graft.Dep[*classifier.Classifier](ctx)
			if err != nil {
				return nil, err
			}

			registry, err := graft.Dep[*setup.Registry](ctx)
			if err != nil {
				return nil, err
			}

			m, err := graft.Dep[ports.CalibrationMatcher](ctx)
			if err != nil {
				return nil, err
			}

			setups, err := graft.Dep[ports.SetupStore](ctx)
			if err != nil {
				return nil, err
			}

			groups, err := graft.Dep[ports.GroupWriter](ctx)
			if err != nil {
				return nil, err
			}

			return NewBuilder(log, cls, registry, m, setups, groups), nil
		},
	})
}
