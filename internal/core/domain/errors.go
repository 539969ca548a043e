package domain

import "go.trai.ch/zerr"

var (
	// ErrDriverNotFound is returned when the build driver cannot be located
	// from the environment at orchestrator construction time.
	ErrDriverNotFound = zerr.New("build driver not found")

	// ErrBuildFailed is returned when the driver process exits non-zero.
	ErrBuildFailed = zerr.New("build failed")

	// ErrProfileNotFound is returned when a requested build profile is not
	// declared in the profile configuration.
	ErrProfileNotFound = zerr.New("profile not found")

	// ErrNoProfilesSpecified is returned when a build is requested without
	// naming any profile.
	ErrNoProfilesSpecified = zerr.New("no profiles specified")
)
