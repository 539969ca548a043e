package domain

// BuildPlan couples a project configuration with the orchestrator options
// needed to build it. One plan maps to exactly one driver invocation.
type BuildPlan struct {
	// Name identifies the plan (the profile name in the configuration file).
	Name string

	// Project is the buildable unit.
	Project *Project

	// Jobs is the parallelism hint passed to the driver. 0 lets the driver
	// pick its own default.
	Jobs uint

	// Verbose enables the driver's verbose output.
	Verbose bool

	// RustcFlags are extra compiler flags, delivered to rustc via RUSTFLAGS.
	RustcFlags []string

	// LogPath optionally names an append-mode file receiving the captured
	// stdout and stderr of the build.
	LogPath string
}
