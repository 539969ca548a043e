// Package toolchain locates the external build driver binary.
package toolchain

import (
	"os"

	"go.trai.ch/crab/internal/core/domain"
	"go.trai.ch/crab/internal/core/ports"
	"go.trai.ch/zerr"
)

// DriverEnvVar is the environment variable naming the cargo driver binary.
const DriverEnvVar = "CARGO"

var _ ports.Locator = (*EnvLocator)(nil)

// EnvLocator resolves the driver path from a single environment variable.
type EnvLocator struct {
	// Var is the variable to consult. Empty means DriverEnvVar.
	Var string
}

// NewEnvLocator creates an EnvLocator reading the default driver variable.
func NewEnvLocator() *EnvLocator {
	return &EnvLocator{Var: DriverEnvVar}
}

// Locate returns the driver path from the configured environment variable.
// An unset or empty variable yields domain.ErrDriverNotFound naming the
// variable in the error metadata.
func (l *EnvLocator) Locate() (string, error) {
	name := l.Var
	if name == "" {
		name = DriverEnvVar
	}

	path, ok := os.LookupEnv(name)
	if !ok || path == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrDriverNotFound, name+" environment variable is not set"), "env_var", name)
	}
	return path, nil
}
