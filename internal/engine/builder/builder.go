// Package builder implements the build orchestrator: it translates a project
// configuration into a single cargo build invocation, runs it synchronously,
// and maps the exit status to a result.
package builder

import (
	"context"
	"strconv"
	"strings"

	"go.trai.ch/crab/internal/core/domain"
	"go.trai.ch/crab/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// envTargetDir directs the driver's artifact output, off the command line.
	envTargetDir = "CARGO_TARGET_DIR"
	// envRustFlags carries space-joined extra flags for the compiler itself,
	// as opposed to the build driver. The driver splits the value on spaces,
	// so individual flags must not contain them.
	envRustFlags = "RUSTFLAGS"
)

// Builder executes one build for an owned project configuration.
//
// The driver path is resolved exactly once, at construction. Build is a single
// synchronous transaction: there are no partial or retry states across calls.
type Builder struct {
	driverPath string
	project    *domain.Project
	jobs       uint
	logPath    string
	verbose    bool
	rustcFlags []string

	runner ports.Runner
	logs   ports.LogSink
	logger ports.Logger
}

// New creates a Builder for the given project. jobs is the driver parallelism
// hint (0 = driver default) and logPath, when non-empty, names an append-mode
// file receiving the captured build output.
//
// Construction fails with domain.ErrDriverNotFound when the locator cannot
// resolve the driver binary; no partially constructed Builder is returned.
func New(project *domain.Project, jobs uint, logPath string,
	locator ports.Locator, runner ports.Runner, logs ports.LogSink, logger ports.Logger,
) (*Builder, error) {
	driverPath, err := locator.Locate()
	if err != nil {
		return nil, err
	}

	return &Builder{
		driverPath: driverPath,
		project:    project,
		jobs:       jobs,
		logPath:    logPath,
		runner:     runner,
		logs:       logs,
		logger:     logger,
	}, nil
}

// SetVerbose enables the driver's verbose output.
func (b *Builder) SetVerbose() {
	b.verbose = true
}

// AddRustcFlag appends one flag destined for the compiler (not the driver).
// Flags are space-joined into RUSTFLAGS at build time.
func (b *Builder) AddRustcFlag(flag string) {
	b.rustcFlags = append(b.rustcFlags, flag)
}

// Invocation assembles the driver command for the current state.
//
// The argument order is fixed: the driver's parser lets later arguments
// override earlier ones, so reordering would change behavior.
func (b *Builder) Invocation() *domain.Invocation {
	args := []string{"build"}

	if b.verbose {
		args = append(args, "--verbose")
	}
	if b.project.Release {
		args = append(args, "--release")
	}
	if b.jobs > 0 {
		args = append(args, "--jobs", strconv.FormatUint(uint64(b.jobs), 10))
	}

	env := make(map[string]string)
	if b.project.OutputDir != "" {
		env[envTargetDir] = b.project.OutputDir
	}
	if len(b.rustcFlags) > 0 {
		env[envRustFlags] = strings.Join(b.rustcFlags, " ")
	}

	if b.project.TargetTriple != "" {
		args = append(args, "--target", b.project.TargetTriple)
	}
	// Presence-triggered: an explicitly set but empty feature list still
	// emits the bare flag.
	if b.project.Features != nil {
		args = append(args, "--features")
		args = append(args, b.project.Features...)
	}
	if b.project.NoDefaultFeatures {
		args = append(args, "--no-default-features")
	}
	if b.project.Target != "" {
		if b.project.IsLib {
			args = append(args, "--lib", b.project.Target)
		} else {
			args = append(args, "--bin", b.project.Target)
		}
	}

	return &domain.Invocation{
		Path: b.driverPath,
		Args: args,
		Env:  env,
		Dir:  b.project.Root,
	}
}

// Fingerprint returns the xxhash digest of the assembled invocation.
func (b *Builder) Fingerprint() string {
	return b.Invocation().Fingerprint()
}

// Build runs the assembled invocation and blocks until the driver exits.
//
// The captured output is appended to the log file (when configured) before
// the exit status is inspected, so failing builds are logged too. A log write
// failure aborts the operation ahead of the status check.
func (b *Builder) Build(ctx context.Context) error {
	_, err := b.Run(ctx)
	return err
}

// Run is Build with the captured output exposed to the caller. The returned
// result is populated for both clean and non-zero exits; err covers spawn and
// log failures, and the domain.ErrBuildFailed mapping for non-zero exits.
func (b *Builder) Run(ctx context.Context) (*domain.ExecResult, error) {
	inv := b.Invocation()

	b.logger.Info("starting build",
		"project", b.project.Root,
		"fingerprint", inv.Fingerprint(),
	)

	res, err := b.runner.Run(ctx, inv)
	if err != nil {
		return nil, err
	}

	if b.logPath != "" {
		if err := b.logs.Append(b.logPath, res.Stdout, res.Stderr); err != nil {
			return nil, err
		}
	}

	if !res.Success() {
		return res, zerr.With(zerr.Wrap(domain.ErrBuildFailed, res.Status), "exit_code", res.ExitCode)
	}
	return res, nil
}
