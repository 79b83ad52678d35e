package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidSourceConfigs indicates invalid session source settings
	// (for example, a suffix without a leading dot).
	ErrInvalidSourceConfigs = errors.New("invalid source configuration")
	// ErrInvalidWorkerConfigs indicates invalid decoding pool settings
	// (for example, zero or negative concurrency).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
