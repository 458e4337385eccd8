// Package clients provides the outbound HTTP client used to fetch remote corpora.
package clients

import "errors"

// Client errors are infrastructure failures. Callers translate them into
// domain errors.
var (
	// ErrCircuitOpen is returned while the breaker rejects requests. It wraps
	// the underlying gobreaker error.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded is returned after every attempt failed. The last
	// attempt's error is wrapped.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
