package ports

// Locator resolves the path of the external build driver binary.
//
// The orchestrator resolves the driver exactly once at construction time;
// injecting the locator lets tests supply a fake path without mutating the
// real process environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type Locator interface {
	// Locate returns the driver path, or domain.ErrDriverNotFound if the
	// driver cannot be resolved.
	Locate() (string, error)
}
