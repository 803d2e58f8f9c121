package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrActivityNotFound is returned when no activity has the requested id.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrActivityAlreadyExists is returned when an activity id is taken.
	ErrActivityAlreadyExists = errors.New("activity already exists")

	// ErrEntryNotFound is returned when a session has no queue entry for
	// the activity.
	ErrEntryNotFound = errors.New("queue entry not found")

	// ErrEntryAlreadyExists is returned when the session or the sequence
	// number is already taken in the activity's queue.
	ErrEntryAlreadyExists = errors.New("queue entry already exists")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when the query builder rejects its
	// input.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or UPDATE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning during row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
