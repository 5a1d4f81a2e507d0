package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/s0up4200/swapisort/categorize"
	"github.com/s0up4200/swapisort/filter"
	"github.com/s0up4200/swapisort/store"
	"github.com/s0up4200/swapisort/swapi"
)

// pipeline runs load-or-fetch, filter, categorize and print in sequence
type pipeline struct {
	source    swapi.CharacterSource
	fetcher   swapi.Fetcher
	cache     *store.FileCache
	filter    *filter.ExprFilter
	formatter *categorize.ConsoleFormatter
	format    categorize.Format
	refresh   bool
	progress  io.Writer
	logger    zerolog.Logger
}

func (p *pipeline) run(ctx context.Context, out io.Writer) error {
	progress := p.progress
	if progress == nil {
		progress = out
	}

	fmt.Fprintln(progress, "Fetching data from SWAPI...")

	load := p.cache.Load
	if p.refresh {
		load = p.cache.Refresh
	}
	characters, err := load(ctx, p.source.GetAllCharacters)
	if err != nil {
		return fmt.Errorf("failed to get characters: %w", err)
	}
	fmt.Fprintf(progress, "Fetched %d characters.\n", len(characters))

	if p.filter != nil {
		total := len(characters)
		characters, err = filter.Apply(p.filter, characters)
		if err != nil {
			return err
		}
		p.logger.Info().
			Str("filter", p.filter.String()).
			Int("matched", len(characters)).
			Int("total", total).
			Msg("Applied character filter")
	}

	fmt.Fprintln(progress, "Categorizing characters by species...")
	categories, err := categorize.NewCategorizer(p.fetcher, p.logger).Categorize(ctx, characters)
	if err != nil {
		return err
	}

	fmt.Fprintln(progress, "Displaying results:")
	rendered, err := p.formatter.Format(categories, p.format)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, rendered)
	return err
}
