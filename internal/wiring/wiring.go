// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/specred/internal/adapters/cas"
	_ "go.trai.ch/specred/internal/adapters/config"
	_ "go.trai.ch/specred/internal/adapters/fs"
	_ "go.trai.ch/specred/internal/adapters/logger"
	_ "go.trai.ch/specred/internal/adapters/matcher"
	_ "go.trai.ch/specred/internal/adapters/metadata"
	_ "go.trai.ch/specred/internal/adapters/rawframe"
	_ "go.trai.ch/specred/internal/adapters/setupfile"
	_ "go.trai.ch/specred/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/specred/internal/app"
	_ "go.trai.ch/specred/internal/engine/classifier"
	_ "go.trai.ch/specred/internal/engine/science"
	_ "go.trai.ch/specred/internal/engine/setup"
)
