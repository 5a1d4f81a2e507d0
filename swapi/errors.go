package swapi

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid swapi configuration")
	// ErrInvalidResponse indicates a body that could not be decoded
	ErrInvalidResponse = errors.New("invalid response from swapi")
	// ErrInvalidCharacter indicates a character record without a name
	ErrInvalidCharacter = errors.New("invalid character record")
	// ErrPaginationLoop indicates a next link pointing at a page already fetched
	ErrPaginationLoop = errors.New("pagination loop detected")
)

// FetchError is returned when the API answers with a non-success status
type FetchError struct {
	URL        string
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *FetchError) Error() string {
	return fmt.Sprintf("error fetching from %s: status code %d", e.URL, e.StatusCode)
}

// IsNotFound checks if the error indicates a not found response
func (e *FetchError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsServerError checks if the server failed rather than the request
func (e *FetchError) IsServerError() bool {
	return e.StatusCode >= http.StatusInternalServerError
}
