package store

import "errors"

// Sentinel errors returned by storage implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSessionsRootNotFound is returned by [UnitSource.List] when the
	// sessions directory does not exist or is not a directory.
	ErrSessionsRootNotFound = errors.New("sessions root not found")

	// ErrCredentialExists is returned when the same login recovered from the
	// same session file is already stored.
	ErrCredentialExists = errors.New("credential already exists")
)

// Low-level database operation errors, wrapped by repository methods when a
// SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan credential rows")
)
