// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/crab/internal/core/domain"
)

// Runner executes one assembled driver invocation synchronously.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run blocks until the child process exits, capturing stdout and stderr
	// fully. A non-zero exit is reported through the result, not the error;
	// the error covers spawn failures only (missing binary, bad directory).
	Run(ctx context.Context, inv *domain.Invocation) (*domain.ExecResult, error)
}
