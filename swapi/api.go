package swapi

import (
	"context"
)

// Fetcher maps a URL to a decoded JSON value
type Fetcher interface {
	// GetJSON issues a GET for url and decodes the JSON body into v.
	// A non-2xx status is reported as a *FetchError.
	GetJSON(ctx context.Context, url string, v any) error
}

// CharacterSource provides the full character listing
type CharacterSource interface {
	// GetAllCharacters walks every page of the people listing
	GetAllCharacters(ctx context.Context) ([]Character, error)
}
