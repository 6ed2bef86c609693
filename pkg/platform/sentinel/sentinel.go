package sentinel

import "errors"

// Sentinel dependency errors. Stores should return these (optionally wrapped)
// so services can translate them into domain errors exactly once.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	// ErrNoMatch signals that a conditional update matched no document: the
	// document is either absent or its state changed since it was last read.
	// Callers disambiguate with a follow-up read.
	ErrNoMatch = errors.New("no document matched")

	ErrUnavailable = errors.New("unavailable")
)
