package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/specred/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/specred/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/specred/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/specred/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/specred/internal/adapters/metadata"           //nolint:depguard // Wired in app layer
	"go.trai.ch/specred/internal/adapters/rawframe"           //nolint:depguard // Wired in app layer
	"go.trai.ch/specred/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/specred/internal/core/ports"
	"go.trai.ch/specred/internal/engine/science"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			metadata.NodeID,
			science.NodeID,
			cas.NodeID,
			rawframe.BuilderNodeID,
			fs.HasherNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	frames, err := graft.Dep[ports.MetadataLoader](ctx)
	if err != nil {
		return nil, err
	}

	sci, err := graft.Dep[*science.Builder](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.MasterStore](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[ports.MasterBuilder](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, frames, sci, store, builder, hasher, log, telemetry), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          app,
		Logger:       log,
		ConfigLoader: loader,
	}, nil
}
