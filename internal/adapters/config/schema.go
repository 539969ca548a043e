package config

// Crabfile represents the structure of the crab.yaml configuration file.
type Crabfile struct {
	Version  string                `yaml:"version"`
	Profiles map[string]ProfileDTO `yaml:"profiles"`
}

// ProfileDTO represents one build profile in the configuration.
type ProfileDTO struct {
	// Path is the project root, relative to the configuration file's
	// directory unless absolute. Empty means the configuration directory.
	Path string `yaml:"path"`

	// Output optionally overrides the artifact output directory.
	Output string `yaml:"output"`

	// Triple optionally selects a cross-compilation target triple.
	Triple string `yaml:"triple"`

	// Features selects manifest features. A present-but-empty list is
	// preserved as an explicit empty selection.
	Features *[]string `yaml:"features"`

	// NoDefaultFeatures disables the manifest's default feature set.
	NoDefaultFeatures bool `yaml:"no-default-features"`

	// Bin and Lib name a specific binary or library target. At most one of
	// the two may be set.
	Bin string `yaml:"bin"`
	Lib string `yaml:"lib"`

	// Release selects release mode.
	Release bool `yaml:"release"`

	// Jobs is the driver parallelism hint. 0 uses the driver default.
	Jobs uint `yaml:"jobs"`

	// Verbose enables the driver's verbose output.
	Verbose bool `yaml:"verbose"`

	// Rustflags are extra compiler flags delivered via RUSTFLAGS.
	Rustflags []string `yaml:"rustflags"`

	// Log optionally names an append-mode build log file.
	Log string `yaml:"log"`
}
