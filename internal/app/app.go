// Package app implements the application layer for crab.
package app

import (
	"context"
	"sort"

	"go.trai.ch/crab/internal/core/domain"
	"go.trai.ch/crab/internal/core/ports"
	"go.trai.ch/crab/internal/engine/builder"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App wires the ports together and exposes the user-facing operations.
type App struct {
	loader    ports.PlanLoader
	locator   ports.Locator
	runner    ports.Runner
	logs      ports.LogSink
	manifest  ports.ManifestReader
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new App instance.
func New(loader ports.PlanLoader, locator ports.Locator, runner ports.Runner,
	logs ports.LogSink, manifest ports.ManifestReader, logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		loader:    loader,
		locator:   locator,
		runner:    runner,
		logs:      logs,
		manifest:  manifest,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Build runs the named profiles from the configuration at configPath.
//
// Each profile is an independent orchestrator value, so profiles build
// concurrently; callers are expected to give profiles distinct log files and
// output directories. The first failure cancels the remaining builds.
func (a *App) Build(ctx context.Context, configPath string, profileNames []string) error {
	if len(profileNames) == 0 {
		return domain.ErrNoProfilesSpecified
	}

	plans, err := a.loader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	selected := make([]*domain.BuildPlan, 0, len(profileNames))
	for _, name := range profileNames {
		plan, ok := plans[name]
		if !ok {
			return zerr.With(domain.ErrProfileNotFound, "profile", name)
		}
		selected = append(selected, plan)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, plan := range selected {
		g.Go(func() error {
			return a.buildPlan(ctx, plan)
		})
	}
	return g.Wait()
}

func (a *App) buildPlan(ctx context.Context, plan *domain.BuildPlan) error {
	b, err := builder.New(plan.Project, plan.Jobs, plan.LogPath,
		a.locator, a.runner, a.logs, a.logger)
	if err != nil {
		return err
	}
	if plan.Verbose {
		b.SetVerbose()
	}
	for _, flag := range plan.RustcFlags {
		b.AddRustcFlag(flag)
	}

	vertex := a.telemetry.Record("build "+plan.Name, b.Fingerprint())

	res, err := b.Run(ctx)
	if res != nil {
		// Replay the captured output onto the vertex once the driver exits;
		// the orchestrator captures rather than streams.
		_, _ = vertex.Stdout().Write(res.Stdout)
		_, _ = vertex.Stderr().Write(res.Stderr)
	}
	vertex.Done(err)

	if err != nil {
		return zerr.With(err, "profile", plan.Name)
	}
	a.logger.Info("build succeeded", "profile", plan.Name)
	return nil
}

// Features lists the features declared in the manifest of the project rooted
// at root, in declaration order.
func (a *App) Features(root string) ([]string, error) {
	project := domain.NewProject(root, "", "", false)
	return a.manifest.Features(project.ManifestPath())
}

// Profiles returns the profile names declared in the configuration at
// configPath, sorted for stable output.
func (a *App) Profiles(configPath string) ([]string, error) {
	plans, err := a.loader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	names := make([]string, 0, len(plans))
	for name := range plans {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Close releases the telemetry session.
func (a *App) Close() error {
	return a.telemetry.Close()
}
