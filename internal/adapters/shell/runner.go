// Package shell provides the driver process runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/crab/internal/core/domain"
	"go.trai.ch/crab/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Runner = (*Runner)(nil)

// Runner implements ports.Runner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new shell Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes the invocation synchronously in its working directory.
//
// The child inherits the parent environment with the invocation's Env entries
// applied on top. Stdout and stderr are captured fully until process exit;
// nothing is streamed. A non-zero exit is not an error here: the result
// carries the exit code and status description, and the caller decides.
func (r *Runner) Run(ctx context.Context, inv *domain.Invocation) (*domain.ExecResult, error) {
	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...) //nolint:gosec // driver path is resolved by the locator

	if inv.Dir != "" {
		cmd.Dir = inv.Dir
	}
	cmd.Env = mergeEnvironment(os.Environ(), inv.Env)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Info("running build driver", "driver", inv.Path, "dir", inv.Dir)

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// The process never ran: missing binary, bad working
			// directory, or a cancelled context.
			return nil, zerr.With(zerr.Wrap(err, "failed to start build driver"), "driver", inv.Path)
		}

		return &domain.ExecResult{
			Stdout:   stdout.Bytes(),
			Stderr:   stderr.Bytes(),
			ExitCode: exitErr.ExitCode(),
			Status:   exitErr.ProcessState.String(),
		}, nil
	}

	return &domain.ExecResult{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: 0,
		Status:   cmd.ProcessState.String(),
	}, nil
}

// mergeEnvironment applies overrides on top of the base "KEY=VALUE" environment.
func mergeEnvironment(base []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return base
	}

	env := make([]string, 0, len(base)+len(overrides))
	for _, entry := range base {
		key, _, _ := strings.Cut(entry, "=")
		if _, ok := overrides[key]; ok {
			continue
		}
		env = append(env, entry)
	}
	for k, v := range overrides {
		env = append(env, k+"="+v)
	}
	return env
}
