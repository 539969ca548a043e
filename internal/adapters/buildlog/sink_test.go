package buildlog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/crab/internal/adapters/buildlog"
)

func TestAppend_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.log")
	sink := buildlog.NewSink()

	err := sink.Append(path, []byte("compiling demo\n"), []byte("warning: unused import\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "compiling demo\nwarning: unused import\n", string(data), "stdout bytes precede stderr bytes")
}

func TestAppend_GrowsByExactByteLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.log")
	sink := buildlog.NewSink()

	stdout := []byte("first run stdout")
	stderr := []byte("first run stderr")
	require.NoError(t, sink.Append(path, stdout, stderr))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(len(stdout)+len(stderr)), info.Size())

	// A second invocation appends rather than truncates.
	require.NoError(t, sink.Append(path, []byte("more"), nil))

	info, err = os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(len(stdout)+len(stderr)+4), info.Size())
}

func TestAppend_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "build.log")

	err := buildlog.NewSink().Append(path, []byte("out"), nil)
	require.Error(t, err)
}
