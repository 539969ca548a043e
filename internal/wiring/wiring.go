// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/crab/internal/adapters/buildlog"
	_ "go.trai.ch/crab/internal/adapters/config"
	_ "go.trai.ch/crab/internal/adapters/logger"
	_ "go.trai.ch/crab/internal/adapters/manifest"
	_ "go.trai.ch/crab/internal/adapters/shell"
	_ "go.trai.ch/crab/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/crab/internal/adapters/toolchain"
	// Register app nodes.
	_ "go.trai.ch/crab/internal/app"
)
