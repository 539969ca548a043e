package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crab/internal/adapters/buildlog"  //nolint:depguard // Wired in app layer
	"go.trai.ch/crab/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/crab/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/crab/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"go.trai.ch/crab/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/crab/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/crab/internal/adapters/toolchain" //nolint:depguard // Wired in app layer
	"go.trai.ch/crab/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			toolchain.NodeID,
			shell.NodeID,
			buildlog.NodeID,
			manifest.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.PlanLoader](ctx)
	if err != nil {
		return nil, err
	}
	locator, err := graft.Dep[ports.Locator](ctx)
	if err != nil {
		return nil, err
	}
	runner, err := graft.Dep[ports.Runner](ctx)
	if err != nil {
		return nil, err
	}
	logs, err := graft.Dep[ports.LogSink](ctx)
	if err != nil {
		return nil, err
	}
	reader, err := graft.Dep[ports.ManifestReader](ctx)
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

	return New(loader, locator, runner, logs, reader, log, telemetry), nil
}
