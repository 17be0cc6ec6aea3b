package config

import "errors"

// Configuration validation errors, returned by Config.Validate.
// Package-level sentinels let callers branch with errors.Is while the
// messages stay human-readable.
var (
	// ErrNoPager is returned when no pager program is configured.
	ErrNoPager = errors.New("no pager configured")

	// ErrInvalidMaxRedirects is returned when the redirect bound is not
	// positive; an unbounded redirect chain could loop forever.
	ErrInvalidMaxRedirects = errors.New("invalid max redirects: must be positive")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidMaxBodySize is returned when the body cap is not positive.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be positive")

	// ErrInvalidDuration is returned when the config file carries an
	// unparsable timeout string.
	ErrInvalidDuration = errors.New("invalid duration in config file")
)
