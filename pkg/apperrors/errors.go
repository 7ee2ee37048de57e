package apperrors

import "errors"

// Sentinel errors for the data and service layers. Repositories and
// usecases wrap these with %w; the HTTP layer maps them to status
// codes. Raw driver errors never cross the handler boundary.
var (
	// ErrNotFound: the query hit the correct shard and matched zero
	// rows. Also returned when a row exists but belongs to another
	// user, so ownership is not probeable.
	ErrNotFound = errors.New("offbeat: not found")

	// ErrConflict: uniqueness violation, e.g. a duplicate username
	// within a shard.
	ErrConflict = errors.New("offbeat: conflict")

	// ErrShardUnavailable: the resolved shard could not be reached.
	// Distinct from ErrNotFound so callers can tell "shard down"
	// apart from "no such row".
	ErrShardUnavailable = errors.New("offbeat: shard unavailable")

	// ErrValidation: malformed or missing input, rejected before any
	// shard is contacted.
	ErrValidation = errors.New("offbeat: invalid input")

	// ErrTransaction: a write failed mid-operation and was rolled
	// back. No partial state is retained.
	ErrTransaction = errors.New("offbeat: transaction failed")

	// ErrUnauthorized: missing or expired session, or bad credentials.
	ErrUnauthorized = errors.New("offbeat: unauthorized")
)
