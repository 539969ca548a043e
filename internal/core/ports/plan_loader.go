package ports

import "go.trai.ch/crab/internal/core/domain"

// PlanLoader reads the profile configuration file into build plans.
//
//go:generate go run go.uber.org/mock/mockgen -source=plan_loader.go -destination=mocks/mock_plan_loader.go -package=mocks
type PlanLoader interface {
	// Load parses the configuration at path and returns the declared plans
	// keyed by profile name.
	Load(path string) (map[string]*domain.BuildPlan, error)
}
