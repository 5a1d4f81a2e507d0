package species

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/s0up4200/swapisort/swapi"
)

// Resolver returns species records, fetching each URL at most once per cache
type Resolver struct {
	fetcher swapi.Fetcher
	cache   *Cache
	logger  zerolog.Logger
	fetches int
}

// NewResolver creates a resolver backed by cache. A nil cache gets a fresh one.
func NewResolver(fetcher swapi.Fetcher, cache *Cache, logger zerolog.Logger) *Resolver {
	if cache == nil {
		cache = NewCache()
	}
	return &Resolver{
		fetcher: fetcher,
		cache:   cache,
		logger:  logger,
	}
}

// Resolve returns the species at url, hitting the network only on a cache miss.
// Failed fetches are not cached.
func (r *Resolver) Resolve(ctx context.Context, url string) (swapi.Species, error) {
	if s, ok := r.cache.Get(url); ok {
		return s, nil
	}

	var s swapi.Species
	r.fetches++
	if err := r.fetcher.GetJSON(ctx, url, &s); err != nil {
		return swapi.Species{}, fmt.Errorf("failed to resolve species: %w", err)
	}

	r.cache.Put(url, s)
	r.logger.Debug().
		Str("url", url).
		Str("species", s.Name).
		Msg("Fetched species")

	return s, nil
}

// Fetches returns how many network fetches the resolver has made
func (r *Resolver) Fetches() int {
	return r.fetches
}

// Cache returns the cache the resolver fills
func (r *Resolver) Cache() *Cache {
	return r.cache
}
