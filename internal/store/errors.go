package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a new user cannot be inserted
	// because another row already holds the same email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup by email or id matches
	// no row of the users table.
	ErrNoUserWasFound = errors.New("no user was found")
)

// Low-level database operation errors.
var (
	// ErrUnsupportedDriver is returned by NewStorages for a driver name that
	// has no connector.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when the database rejects a query for a
	// reason not covered by the sentinels above.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a result row cannot be scanned into
	// a models.User.
	ErrScanningRow = errors.New("failed to scan user row")
)
