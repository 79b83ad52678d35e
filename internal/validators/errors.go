package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUnitName    = errors.New("unit name is required")
	ErrEmptyHostname    = errors.New("hostname is required")
	ErrInvalidPort      = errors.New("port must be between 0 and 65535")
	ErrEmptyCredential  = errors.New("neither username nor password recovered")
	ErrInvalidID        = errors.New("credential id is required")
	ErrInvalidService   = errors.New("invalid service attributes")
	ErrInvalidTimestamp = errors.New("credential creation time is required")
)
