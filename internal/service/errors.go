package service

import "errors"

// ErrConfigRootNotFound is the only error that ends a run: the sessions
// directory is unknown or missing.
var ErrConfigRootNotFound = errors.New("securecrt session path not found")

// ErrNoCredentialStore is returned when stored credentials are requested but
// no database is configured.
var ErrNoCredentialStore = errors.New("no credential database configured")
