package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to create or update a
	// user fails because the username or email is already taken. The sentinel
	// deliberately does not say which field conflicted; the constraint name is
	// only logged server-side.
	ErrUserAlreadyExists = errors.New("username or email already exists")

	// ErrUserNotFound is returned when a lookup by email or id matches no
	// user record.
	ErrUserNotFound = errors.New("user not found")

	// ErrCheckNotFound is returned when a query or update targets a check
	// (identified by id and user_id) that does not exist in the database.
	ErrCheckNotFound = errors.New("check not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
