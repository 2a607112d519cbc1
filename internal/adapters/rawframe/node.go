package rawframe

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/specred/internal/core/ports"
)

const (
	// ReaderNodeID is the unique identifier for the pixel reader Graft node.
	ReaderNodeID graft.ID = "adapter.rawframe.reader"
	// BuilderNodeID is the unique identifier for the master builder Graft node.
	BuilderNodeID graft.ID = "adapter.rawframe.builder"
)

func init() {
	graft.Register(graft.Node[ports.PixelReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PixelReader, error) {
			return NewReader(), nil
		},
	})

	graft.Register(graft.Node[ports.MasterBuilder]{
		ID:        BuilderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ReaderNodeID},
		Run: func(ctx context.Context) (ports.MasterBuilder, error) {
			reader, err := graft.Dep[ports.PixelReader](ctx)
			if err != nil {
				return nil, err
			}
			return NewStacker(reader), nil
		},
	})
}
