package fetcher

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is returned when a provider answers with a non-2xx status.
// The response body is discarded; callers get the provider name and the
// status code and decide for themselves.
type StatusError struct {
	Provider   string
	StatusCode int
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API returned status %d", e.Provider, e.StatusCode)
}

// NotFound reports whether the provider answered 404, which for the
// emote APIs means the requested channel does not exist upstream.
func (e *StatusError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsNotFound reports whether err is a StatusError for a missing channel
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.NotFound()
}
