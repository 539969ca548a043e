package commands_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"go.trai.ch/crab/cmd/crab/commands"
	"go.trai.ch/crab/internal/adapters/logger"
	"go.trai.ch/crab/internal/app"
	"go.trai.ch/crab/internal/core/domain"
	"go.trai.ch/crab/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type cliMocks struct {
	loader    *mocks.MockPlanLoader
	locator   *mocks.MockLocator
	runner    *mocks.MockRunner
	logs      *mocks.MockLogSink
	manifest  *mocks.MockManifestReader
	telemetry *mocks.MockTelemetry
}

func newCLI(ctrl *gomock.Controller) (*commands.CLI, *cliMocks) {
	m := &cliMocks{
		loader:    mocks.NewMockPlanLoader(ctrl),
		locator:   mocks.NewMockLocator(ctrl),
		runner:    mocks.NewMockRunner(ctrl),
		logs:      mocks.NewMockLogSink(ctrl),
		manifest:  mocks.NewMockManifestReader(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
	}

	log := logger.New()
	log.SetOutput(io.Discard)

	a := app.New(m.loader, m.locator, m.runner, m.logs, m.manifest, log, m.telemetry)
	return commands.New(a), m
}

func TestBuild_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, m := newCLI(ctrl)

	plan := &domain.BuildPlan{
		Name:    "dist",
		Project: domain.NewProject("/work/demo", "", "", false),
	}
	m.loader.EXPECT().Load("crab.yaml").Return(map[string]*domain.BuildPlan{"dist": plan}, nil).Times(1)
	m.locator.EXPECT().Locate().Return("/usr/bin/cargo", nil).Times(1)
	m.runner.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(&domain.ExecResult{ExitCode: 0, Status: "exit status 0"}, nil).Times(1)

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Stdout().Return(io.Discard).AnyTimes()
	vertex.EXPECT().Stderr().Return(io.Discard).AnyTimes()
	vertex.EXPECT().Done(nil).Times(1)
	m.telemetry.EXPECT().Record("build dist", gomock.Any()).Return(vertex).Times(1)

	cli.SetArgs([]string{"build", "dist"})

	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestBuild_NoProfilesShowsHelp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, _ := newCLI(ctrl)

	// No loader expectation: help is displayed without touching the app.
	cli.SetArgs([]string{"build"})

	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error for missing profiles, got: %v", err)
	}
}

func TestBuild_UnknownProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, m := newCLI(ctrl)
	m.loader.EXPECT().Load("crab.yaml").Return(map[string]*domain.BuildPlan{}, nil).Times(1)

	cli.SetArgs([]string{"build", "missing"})

	err := cli.Execute(context.Background())
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Errorf("Expected ErrProfileNotFound, got: %v", err)
	}
}

func TestBuild_ConfigFlagOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, m := newCLI(ctrl)
	m.loader.EXPECT().Load("ci/crab.yaml").Return(map[string]*domain.BuildPlan{}, nil).Times(1)

	cli.SetArgs([]string{"build", "dist", "--config", "ci/crab.yaml"})

	err := cli.Execute(context.Background())
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Errorf("Expected ErrProfileNotFound from the overridden config, got: %v", err)
	}
}

func TestFeatures_DefaultsToCurrentDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, m := newCLI(ctrl)
	project := domain.NewProject(".", "", "", false)
	m.manifest.EXPECT().Features(project.ManifestPath()).Return([]string{"default", "tls"}, nil).Times(1)

	cli.SetArgs([]string{"features"})

	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestFeatures_ExplicitPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, m := newCLI(ctrl)
	project := domain.NewProject("/work/demo", "", "", false)
	m.manifest.EXPECT().Features(project.ManifestPath()).Return(nil, nil).Times(1)

	cli.SetArgs([]string{"features", "/work/demo"})

	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestProfiles_ListsConfiguredNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, m := newCLI(ctrl)
	m.loader.EXPECT().Load("crab.yaml").Return(map[string]*domain.BuildPlan{
		"dev": {}, "dist": {},
	}, nil).Times(1)

	cli.SetArgs([]string{"profiles"})

	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestRoot_Help(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, _ := newCLI(ctrl)
	cli.SetArgs([]string{"--help"})

	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error for help, got: %v", err)
	}
}

func TestVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, _ := newCLI(ctrl)
	cli.SetArgs([]string{"version"})

	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}
