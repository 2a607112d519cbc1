package matcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/specred/internal/adapters/fs"
	"go.trai.ch/specred/internal/core/ports"
)

// NodeID is the unique identifier for the calibration matcher Graft node.
const NodeID graft.ID = "adapter.calibration_matcher"

func init() {
	graft.Register(graft.Node[ports.CalibrationMatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.CalibrationMatcher, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewMatcher(hasher), nil
		},
	})
}
