// Package swapitest provides an in-memory swapi.Fetcher for tests.
package swapitest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/s0up4200/swapisort/swapi"
)

// Fetcher serves canned JSON bodies keyed by URL and counts every call.
// URLs without a body answer 404. A URL listed in Status answers with that
// code instead.
type Fetcher struct {
	Bodies map[string]string
	Status map[string]int
	// FailAll, when non-zero, makes every URL answer with this status.
	FailAll int

	calls map[string]int
	order []string
}

// New creates a Fetcher serving the given bodies
func New(bodies map[string]string) *Fetcher {
	return &Fetcher{
		Bodies: bodies,
		Status: make(map[string]int),
	}
}

// GetJSON implements swapi.Fetcher
func (f *Fetcher) GetJSON(ctx context.Context, url string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[url]++
	f.order = append(f.order, url)

	if f.FailAll != 0 {
		return &swapi.FetchError{URL: url, StatusCode: f.FailAll}
	}
	if code, ok := f.Status[url]; ok {
		return &swapi.FetchError{URL: url, StatusCode: code}
	}

	body, ok := f.Bodies[url]
	if !ok {
		return &swapi.FetchError{URL: url, StatusCode: http.StatusNotFound}
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return fmt.Errorf("%w: %s: %w", swapi.ErrInvalidResponse, url, err)
	}
	return nil
}

// Calls returns how many times url was requested
func (f *Fetcher) Calls(url string) int {
	return f.calls[url]
}

// TotalCalls returns the number of requests across all URLs
func (f *Fetcher) TotalCalls() int {
	return len(f.order)
}

// Requested returns every requested URL in call order
func (f *Fetcher) Requested() []string {
	return append([]string(nil), f.order...)
}
