package builder_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/crab/internal/adapters/buildlog"
	"go.trai.ch/crab/internal/adapters/shell"
	"go.trai.ch/crab/internal/adapters/toolchain"
	"go.trai.ch/crab/internal/core/domain"
	"go.trai.ch/crab/internal/engine/builder"
)

// fakeDriver writes an executable script standing in for the cargo binary and
// points the given environment variable at it.
func fakeDriver(t *testing.T, envVar, script string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cargo")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755)) //nolint:gosec // test fixture must be executable
	t.Setenv(envVar, path)
}

func TestBuild_EndToEnd(t *testing.T) {
	fakeDriver(t, "CRAB_E2E_DRIVER", `
printf 'args:%s\n' "$*"
printf 'target_dir:%s\n' "${CARGO_TARGET_DIR:-}"
printf 'rustflags:%s\n' "${RUSTFLAGS:-}"
echo 'driver warning' >&2
`)

	root := t.TempDir()
	logPath := filepath.Join(t.TempDir(), "build.log")

	project := domain.NewProject(root, "/tmp/artifacts", "", false)
	project.MarkRelease()
	project.AddFeature("tls")

	runner := shell.NewRunner(testLogger())
	b, err := builder.New(project, 2, logPath,
		&toolchain.EnvLocator{Var: "CRAB_E2E_DRIVER"}, runner, buildlog.NewSink(), testLogger())
	require.NoError(t, err)
	b.AddRustcFlag("-Copt-level=3")

	require.NoError(t, b.Build(context.Background()))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	log := string(data)
	require.Contains(t, log, "args:build --release --jobs 2 --features tls")
	require.Contains(t, log, "target_dir:/tmp/artifacts")
	require.Contains(t, log, "rustflags:-Copt-level=3")
	require.Contains(t, log, "driver warning", "stderr is captured into the log after stdout")
}

func TestBuild_EndToEnd_DriverFailureIsLogged(t *testing.T) {
	fakeDriver(t, "CRAB_E2E_DRIVER", `
echo 'compiling'
echo 'error: expected one of' >&2
exit 101
`)

	root := t.TempDir()
	logPath := filepath.Join(t.TempDir(), "build.log")

	project := domain.NewProject(root, "", "", false)
	runner := shell.NewRunner(testLogger())
	b, err := builder.New(project, 0, logPath,
		&toolchain.EnvLocator{Var: "CRAB_E2E_DRIVER"}, runner, buildlog.NewSink(), testLogger())
	require.NoError(t, err)

	err = b.Build(context.Background())
	require.ErrorIs(t, err, domain.ErrBuildFailed)
	require.Contains(t, err.Error(), "exit status 101")

	data, readErr := os.ReadFile(logPath)
	require.NoError(t, readErr)
	require.Equal(t, "compiling\nerror: expected one of\n", string(data),
		"failing builds still append their output before the status check")
}
