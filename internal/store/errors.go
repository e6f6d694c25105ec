package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrListingNotSaved is returned when an INSERT of a listing completes
	// without error but affects no rows.
	ErrListingNotSaved = errors.New("listing was not saved")

	// ErrListingAlreadyExists is returned when a listing with the same id is
	// already stored.
	ErrListingAlreadyExists = errors.New("listing already exists")

	// ErrTokenNotSaved is returned when an INSERT of a created token affects
	// no rows.
	ErrTokenNotSaved = errors.New("created token was not saved")

	// ErrTokenAlreadyExists is returned when a token with the same address is
	// already recorded.
	ErrTokenAlreadyExists = errors.New("created token already exists")

	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when the database rejects a query.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
