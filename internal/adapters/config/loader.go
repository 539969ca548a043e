// Package config provides the profile configuration loader for crab.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/crab/internal/core/domain"
	"go.trai.ch/crab/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.PlanLoader = (*FileLoader)(nil)

// FileLoader implements ports.PlanLoader using a YAML file.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load reads the configuration file at path and returns its build plans.
func (l *FileLoader) Load(path string) (map[string]*domain.BuildPlan, error) {
	return Load(path)
}

// Load reads a crab.yaml file and returns the declared build plans keyed by
// profile name. Relative project paths are resolved against the file's
// directory.
func Load(path string) (map[string]*domain.BuildPlan, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "config", path)
	}

	var crabfile Crabfile
	if err := yaml.Unmarshal(data, &crabfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "config", path)
	}

	baseDir := filepath.Dir(path)

	plans := make(map[string]*domain.BuildPlan, len(crabfile.Profiles))
	for name, dto := range crabfile.Profiles {
		plan, err := dto.toPlan(name, baseDir)
		if err != nil {
			return nil, err
		}
		plans[name] = plan
	}
	return plans, nil
}

func (dto ProfileDTO) toPlan(name, baseDir string) (*domain.BuildPlan, error) {
	if dto.Bin != "" && dto.Lib != "" {
		return nil, zerr.With(zerr.New("profile declares both bin and lib targets"), "profile", name)
	}

	root := dto.Path
	if !filepath.IsAbs(root) {
		root = filepath.Join(baseDir, root)
	}

	isLib := dto.Lib != ""
	project := domain.NewProject(root, dto.Output, dto.Triple, isLib)
	project.NoDefaultFeatures = dto.NoDefaultFeatures
	if dto.Release {
		project.MarkRelease()
	}
	if dto.Features != nil {
		// Preserve presence: an explicit empty list still selects features.
		project.Features = []string{}
		for _, f := range *dto.Features {
			project.AddFeature(f)
		}
	}
	switch {
	case isLib:
		project.Target = dto.Lib
	case dto.Bin != "":
		project.Target = dto.Bin
	}

	return &domain.BuildPlan{
		Name:       name,
		Project:    project,
		Jobs:       dto.Jobs,
		Verbose:    dto.Verbose,
		RustcFlags: dto.Rustflags,
		LogPath:    dto.Log,
	}, nil
}
