package errors

import (
	"errors"
)

// Sentinel errors shared across layers. Gateways translate driver failures
// into these so usecases and handlers can branch with errors.Is.
var (
	ErrProductNotFound        = errors.New("product not found")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrFavoriteRejected       = errors.New("favorite toggle rejected")
	ErrDatabaseUnavailable    = errors.New("database unavailable")
	ErrInvalidInput           = errors.New("invalid input")
	ErrStaleGeneration        = errors.New("stale query generation")
	ErrFetchInFlight          = errors.New("fetch already in flight")
)

// IsProductNotFound checks if an error represents a missing product.
func IsProductNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound)
}

// IsAuthenticationRequired checks if an error represents an anonymous or
// expired viewer session. This is a control-flow branch, not a failure:
// handlers answer it with a login redirect.
func IsAuthenticationRequired(err error) bool {
	return errors.Is(err, ErrAuthenticationRequired)
}

// IsFavoriteRejected checks if the backend refused a favorite toggle.
func IsFavoriteRejected(err error) bool {
	return errors.Is(err, ErrFavoriteRejected)
}

// IsDatabaseError checks if an error represents a database-related problem.
func IsDatabaseError(err error) bool {
	return errors.Is(err, ErrDatabaseUnavailable)
}

// IsValidationError checks if an error represents invalid input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsRetryableError determines if the caller may simply try again. A failed
// page fetch keeps its accumulated pages, so re-triggering the advance is
// always safe for these.
func IsRetryableError(err error) bool {
	return errors.Is(err, ErrDatabaseUnavailable) || errors.Is(err, ErrFetchInFlight)
}
