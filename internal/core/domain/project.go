// Package domain contains the core types for the crab build wrapper.
package domain

import "path/filepath"

// ManifestFilename is the canonical name of the cargo manifest within a project root.
const ManifestFilename = "Cargo.toml"

// Project describes one buildable cargo unit and its build options.
//
// The manifest path is derived from the project root at construction time and is
// not independently settable. The zero distinction between a nil Features slice
// (no feature selection) and a non-nil empty one (explicit empty selection) is
// load-bearing: the orchestrator emits a bare --features flag for the latter.
type Project struct {
	// Root is the project root directory. It is not validated at construction;
	// a missing directory surfaces on first use.
	Root string

	// TargetTriple optionally selects a cross-compilation target.
	TargetTriple string

	// Features lists the features to enable. nil means "defaults only".
	Features []string

	// OutputDir optionally overrides the artifact output directory
	// (delivered to the driver via CARGO_TARGET_DIR, not as an argument).
	OutputDir string

	// Release selects release mode. false means debug.
	Release bool

	// IsLib selects --lib over --bin when Target is set.
	IsLib bool

	// NoDefaultFeatures disables the manifest's default feature set.
	NoDefaultFeatures bool

	// Target optionally names a specific binary or library within the project.
	Target string

	manifestPath string
}

// NewProject creates a Project for the given root directory.
// outputDir and targetTriple may be empty to leave them unset.
func NewProject(root, outputDir, targetTriple string, isLib bool) *Project {
	return &Project{
		Root:         root,
		OutputDir:    outputDir,
		TargetTriple: targetTriple,
		IsLib:        isLib,
		manifestPath: filepath.Join(root, ManifestFilename),
	}
}

// ManifestPath returns the derived path of the project's cargo manifest.
func (p *Project) ManifestPath() string {
	return p.manifestPath
}

// MarkRelease switches the project to release mode. Idempotent.
func (p *Project) MarkRelease() {
	p.Release = true
}

// AddFeature appends a feature to the selection, creating the list if absent.
// Duplicates are passed through to the driver unchanged.
func (p *Project) AddFeature(name string) {
	p.Features = append(p.Features, name)
}
