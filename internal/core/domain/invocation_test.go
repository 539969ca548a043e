package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crab/internal/core/domain"
)

func TestInvocation_Fingerprint_Deterministic(t *testing.T) {
	inv := &domain.Invocation{
		Path: "/usr/bin/cargo",
		Args: []string{"build", "--release"},
		Env:  map[string]string{"RUSTFLAGS": "-C opt-level=3", "CARGO_TARGET_DIR": "/tmp/out"},
		Dir:  "/work/demo",
	}

	first := inv.Fingerprint()
	second := inv.Fingerprint()

	require.Equal(t, first, second)
	require.Len(t, first, 16)
}

func TestInvocation_Fingerprint_SensitiveToArguments(t *testing.T) {
	base := &domain.Invocation{Path: "/usr/bin/cargo", Args: []string{"build"}, Dir: "/work"}
	release := &domain.Invocation{Path: "/usr/bin/cargo", Args: []string{"build", "--release"}, Dir: "/work"}
	otherDir := &domain.Invocation{Path: "/usr/bin/cargo", Args: []string{"build"}, Dir: "/other"}

	assert.NotEqual(t, base.Fingerprint(), release.Fingerprint())
	assert.NotEqual(t, base.Fingerprint(), otherDir.Fingerprint())
}

func TestExecResult_Success(t *testing.T) {
	ok := &domain.ExecResult{ExitCode: 0, Status: "exit status 0"}
	failed := &domain.ExecResult{ExitCode: 101, Status: "exit status 101"}

	assert.True(t, ok.Success())
	assert.False(t, failed.Success())
}
