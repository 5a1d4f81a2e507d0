// Package categorize groups characters by the name of their species.
package categorize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/s0up4200/swapisort/species"
	"github.com/s0up4200/swapisort/swapi"
)

// Unknown collects characters without a species or whose species has no name
const Unknown = "Unknown"

// CategoryMap maps a category name to character names. Categories keep the
// order they were first seen in and members keep processing order.
type CategoryMap struct {
	order   []string
	members map[string][]string
}

// NewCategoryMap creates an empty CategoryMap
func NewCategoryMap() *CategoryMap {
	return &CategoryMap{members: make(map[string][]string)}
}

// Add appends name to category, creating the category on first use
func (m *CategoryMap) Add(category, name string) {
	if _, ok := m.members[category]; !ok {
		m.order = append(m.order, category)
	}
	m.members[category] = append(m.members[category], name)
}

// Categories returns the category names in first-seen order
func (m *CategoryMap) Categories() []string {
	return append([]string(nil), m.order...)
}

// Members returns the character names in category
func (m *CategoryMap) Members(category string) []string {
	return append([]string(nil), m.members[category]...)
}

// Len returns the number of categories
func (m *CategoryMap) Len() int {
	return len(m.order)
}

// Total returns the number of categorized characters
func (m *CategoryMap) Total() int {
	var n int
	for _, names := range m.members {
		n += len(names)
	}
	return n
}

// MarshalJSON encodes the map as a JSON object with keys in category order
func (m *CategoryMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(category)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(m.members[category])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Categorizer groups characters by species name
type Categorizer struct {
	fetcher swapi.Fetcher
	logger  zerolog.Logger
}

// NewCategorizer creates a Categorizer that looks species up through fetcher
func NewCategorizer(fetcher swapi.Fetcher, logger zerolog.Logger) *Categorizer {
	return &Categorizer{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Categorize groups characters by the name of their first species.
// Every call starts with an empty species cache. Any lookup failure aborts
// the whole run.
func (c *Categorizer) Categorize(ctx context.Context, characters []swapi.Character) (*CategoryMap, error) {
	resolver := species.NewResolver(c.fetcher, species.NewCache(), c.logger)
	categories := NewCategoryMap()

	for _, character := range characters {
		category, err := CategoryFor(ctx, resolver, character)
		if err != nil {
			return nil, fmt.Errorf("failed to categorize %q: %w", character.Name, err)
		}
		categories.Add(category, character.Name)
	}

	c.logger.Debug().
		Int("characters", len(characters)).
		Int("categories", categories.Len()).
		Int("species_fetches", resolver.Fetches()).
		Msg("Categorized characters")

	return categories, nil
}

// CategoryFor returns the category of a single character
func CategoryFor(ctx context.Context, resolver *species.Resolver, character swapi.Character) (string, error) {
	url, ok := character.PrimarySpecies()
	if !ok {
		return Unknown, nil
	}

	s, err := resolver.Resolve(ctx, url)
	if err != nil {
		return "", err
	}
	if s.Name == "" {
		return Unknown, nil
	}
	return s.Name, nil
}
