package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrInvalidRequest indicates malformed or out-of-range search input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrSessionNotFound indicates an unknown or expired search session.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSourceUnavailable indicates the flight source could not serve the search.
	ErrSourceUnavailable = errors.New("flight source unavailable")

	// ErrSourceTimeout indicates the flight source did not answer in time.
	ErrSourceTimeout = errors.New("flight source timeout")

	// ErrSourceUnauthorized indicates the flight source rejected our credentials.
	ErrSourceUnauthorized = errors.New("flight source rejected credentials")

	// ErrRateLimited indicates the flight source throttled the request.
	ErrRateLimited = errors.New("API rate limit exceeded. Please try again in a moment.")
)

// SourceError wraps a failure from a specific flight source.
type SourceError struct {
	// Source is the name of the flight source
	Source string

	// Err is the underlying error
	Err error

	// Retryable reports whether repeating the call may succeed
	Retryable bool
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a non-retryable source error.
func NewSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err}
}

// NewRetryableSourceError creates a source error that may succeed on retry.
func NewRetryableSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err, Retryable: true}
}

// NewSourceTimeoutError creates a source error wrapping ErrSourceTimeout.
func NewSourceTimeoutError(source string) *SourceError {
	return &SourceError{Source: source, Err: ErrSourceTimeout, Retryable: true}
}

// IsRetryable reports whether err is a SourceError marked retryable.
func IsRetryable(err error) bool {
	var se *SourceError
	if errors.As(err, &se) {
		return se.Retryable
	}
	return false
}

// IsInvalidRequest checks if err is or wraps ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsSessionNotFound checks if err is or wraps ErrSessionNotFound.
func IsSessionNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound)
}

// IsRateLimited checks if err is or wraps ErrRateLimited.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
