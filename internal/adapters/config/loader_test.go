package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crab/internal/adapters/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "crab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, `
version: "1"
profiles:
  dist:
    path: service
    release: true
    output: build/out
    triple: x86_64-unknown-linux-musl
    features: [tls, cli]
    no-default-features: true
    bin: crab-demo
    jobs: 8
    verbose: true
    rustflags: ["-Copt-level=3", "-Cdebuginfo=0"]
    log: logs/dist.log
  dev:
    path: service
`)

	plans, err := config.Load(path)
	require.NoError(t, err)
	require.Len(t, plans, 2)

	dist := plans["dist"]
	require.NotNil(t, dist)
	assert.Equal(t, "dist", dist.Name)
	assert.Equal(t, uint(8), dist.Jobs)
	assert.True(t, dist.Verbose)
	assert.Equal(t, []string{"-Copt-level=3", "-Cdebuginfo=0"}, dist.RustcFlags)
	assert.Equal(t, "logs/dist.log", dist.LogPath)

	p := dist.Project
	assert.Equal(t, filepath.Join(filepath.Dir(path), "service"), p.Root)
	assert.True(t, p.Release)
	assert.Equal(t, "build/out", p.OutputDir)
	assert.Equal(t, "x86_64-unknown-linux-musl", p.TargetTriple)
	assert.Equal(t, []string{"tls", "cli"}, p.Features)
	assert.True(t, p.NoDefaultFeatures)
	assert.False(t, p.IsLib)
	assert.Equal(t, "crab-demo", p.Target)

	dev := plans["dev"]
	require.NotNil(t, dev)
	assert.False(t, dev.Project.Release)
	assert.Nil(t, dev.Project.Features, "unset features stay absent")
}

func TestLoad_EmptyFeatureListStaysPresent(t *testing.T) {
	path := writeConfig(t, `
version: "1"
profiles:
  bare:
    features: []
`)

	plans, err := config.Load(path)
	require.NoError(t, err)

	p := plans["bare"].Project
	require.NotNil(t, p.Features, "explicit empty selection is distinct from absence")
	require.Empty(t, p.Features)
}

func TestLoad_LibTarget(t *testing.T) {
	path := writeConfig(t, `
version: "1"
profiles:
  core:
    lib: crab-core
`)

	plans, err := config.Load(path)
	require.NoError(t, err)

	p := plans["core"].Project
	assert.True(t, p.IsLib)
	assert.Equal(t, "crab-core", p.Target)
}

func TestLoad_BinAndLibConflict(t *testing.T) {
	path := writeConfig(t, `
version: "1"
profiles:
  broken:
    bin: a
    lib: b
`)

	_, err := config.Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "both bin and lib")
}

func TestLoad_AbsoluteProjectPath(t *testing.T) {
	path := writeConfig(t, `
version: "1"
profiles:
  abs:
    path: /srv/project
`)

	plans, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "/srv/project", plans["abs"].Project.Root)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "crab.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "profiles: [broken")

	_, err := config.Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse config file")
}
