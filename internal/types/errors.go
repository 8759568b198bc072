package types

import (
	"errors"
	"fmt"
)

// Domain specific errors surfaced by the place operations.
var (
	ErrNotFound   = errors.New("requested item not found")
	ErrBadRequest = errors.New("bad request")
)

// ProviderError describes a failed call to the upstream geocoding provider.
// Body holds at most the first few KB of the response for diagnostics.
type ProviderError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geocoding provider: %v", e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("geocoding provider returned status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("geocoding provider returned status %d", e.StatusCode)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Retryable reports whether the failure is worth another attempt: transport
// errors, rate limiting, and server-side failures. Other 4xx responses mean
// the request itself is wrong and will not improve on retry.
func (e *ProviderError) Retryable() bool {
	if e.Err != nil {
		return true
	}
	return e.StatusCode == 429 || e.StatusCode >= 500
}
