// Package errors provides centralized error handling for shipdog.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrDetectionFailed indicates that the repository's upstream state could
	// not be queried (git fetch or git status failed). Detection failures are
	// always fatal to a deploy run: a stale or unreachable remote must not
	// silently report "no changes".
	ErrDetectionFailed = errors.New("change detection failed")

	// ErrSyncFailed indicates that pulling upstream commits failed.
	ErrSyncFailed = errors.New("sync failed")

	// ErrBuildFailed indicates that the configured build command returned
	// a non-zero exit status.
	ErrBuildFailed = errors.New("build failed")

	// ErrRestartFailed indicates that restarting the managed service failed.
	ErrRestartFailed = errors.New("restart failed")

	// ErrAuditWrite indicates that a deploy attempt could not be appended to
	// the audit log.
	ErrAuditWrite = errors.New("audit log write failed")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidRepo indicates an invalid repository configuration value.
	ErrConfigInvalidRepo = errors.New("invalid repository configuration")

	// ErrConfigInvalidBuild indicates an invalid build configuration value.
	ErrConfigInvalidBuild = errors.New("invalid build configuration")

	// ErrConfigInvalidService indicates an invalid service configuration value.
	ErrConfigInvalidService = errors.New("invalid service configuration")

	// ErrConfigInvalidAudit indicates an invalid audit configuration value.
	ErrConfigInvalidAudit = errors.New("invalid audit configuration")

	// ErrConfigInvalidListener indicates an invalid listener configuration value.
	ErrConfigInvalidListener = errors.New("invalid listener configuration")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrValueOutOfRange indicates that a value is outside the allowed range.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")
)
