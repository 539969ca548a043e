// Package main is the entry point for the crab CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/crab/cmd/crab/commands"
	"go.trai.ch/crab/internal/app"
	"go.trai.ch/crab/internal/core/domain"
	_ "go.trai.ch/crab/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer components.App.Close() //nolint:errcheck // best effort telemetry flush

	cli := commands.New(components.App)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrBuildFailed) {
			// The driver already reported the compile errors on its own
			// streams; don't bury them under a stack trace.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
