package config

import "errors"

// Configuration validation errors returned by Config.Validate().
//
// Design decision: We use package-level sentinel errors rather than creating
// new error instances in Validate() so callers can use errors.Is() for
// programmatic handling while still getting human-readable messages.
var (
	// ErrNoSourceDir is returned when no source directory is configured.
	ErrNoSourceDir = errors.New("no source directory specified")

	// ErrInvalidJobs is returned when the render concurrency is not
	// positive. Zero jobs would mean no rendering at all.
	ErrInvalidJobs = errors.New("invalid jobs: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidRootMarker is returned when the project-reference root
	// marker contains a path separator.
	ErrInvalidRootMarker = errors.New("invalid root marker: must not contain path separators")
)
