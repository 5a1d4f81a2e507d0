package swapi

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// CollectCharacters follows next links from startURL until the listing is exhausted.
// Results keep API order across pages. Any failing page discards everything
// collected so far.
func CollectCharacters(ctx context.Context, f Fetcher, startURL string, logger zerolog.Logger) ([]Character, error) {
	var all []Character
	visited := make(map[string]struct{})
	url := startURL
	page := 1

	for url != "" {
		if _, seen := visited[url]; seen {
			return nil, fmt.Errorf("%w: %s", ErrPaginationLoop, url)
		}
		visited[url] = struct{}{}

		var resp Page
		if err := f.GetJSON(ctx, url, &resp); err != nil {
			return nil, fmt.Errorf("failed to get characters page %d: %w", page, err)
		}

		all = append(all, resp.Results...)

		logger.Debug().
			Int("page", page).
			Int("count", len(resp.Results)).
			Int("total", len(all)).
			Msg("Retrieved characters page")

		url = ""
		if resp.HasNext() {
			url = *resp.Next
		}
		page++
	}

	if all == nil {
		all = []Character{}
	}
	return all, nil
}
