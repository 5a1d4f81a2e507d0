// Package store keeps the fetched character list in a local JSON file so later
// runs can skip the network.
//
// The file holds a pretty-printed JSON array of character objects. It is written
// in one non-atomic write: a crash mid-write can leave a truncated file, which
// the next Load reports as a decode error.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/s0up4200/swapisort/swapi"
)

// DefaultFile is the cache file name used when none is configured
const DefaultFile = "characters.json"

const indent = "    "

// CollectFunc produces the full character list, usually from the network
type CollectFunc func(ctx context.Context) ([]swapi.Character, error)

// FileCache persists the character list at a single path
type FileCache struct {
	path   string
	logger zerolog.Logger
}

// NewFileCache creates a FileCache for path. An empty path uses DefaultFile.
func NewFileCache(path string, logger zerolog.Logger) *FileCache {
	if path == "" {
		path = DefaultFile
	}
	return &FileCache{path: path, logger: logger}
}

// Path returns the cache file location
func (c *FileCache) Path() string {
	return c.path
}

// Exists reports whether the cache file is present
func (c *FileCache) Exists() (bool, error) {
	_, err := os.Stat(c.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Load returns the cached characters when the file exists. Otherwise it calls
// collect, writes the result to the file and returns it.
func (c *FileCache) Load(ctx context.Context, collect CollectFunc) ([]swapi.Character, error) {
	exists, err := c.Exists()
	if err != nil {
		return nil, fmt.Errorf("failed to check cache file: %w", err)
	}
	if exists {
		return c.Read()
	}
	return c.Refresh(ctx, collect)
}

// Refresh calls collect and overwrites the cache file with the result
func (c *FileCache) Refresh(ctx context.Context, collect CollectFunc) ([]swapi.Character, error) {
	characters, err := collect(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.Write(characters); err != nil {
		return nil, err
	}
	return characters, nil
}

// Read decodes the cache file
func (c *FileCache) Read() ([]swapi.Character, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	var characters []swapi.Character
	if err := json.Unmarshal(data, &characters); err != nil {
		return nil, fmt.Errorf("failed to decode cache file %s: %w", c.path, err)
	}
	if characters == nil {
		characters = []swapi.Character{}
	}

	c.logger.Debug().
		Str("path", c.path).
		Int("count", len(characters)).
		Msg("Loaded characters from cache")

	return characters, nil
}

// Write stores characters as an indented JSON array
func (c *FileCache) Write(characters []swapi.Character) error {
	if characters == nil {
		characters = []swapi.Character{}
	}

	data, err := json.MarshalIndent(characters, "", indent)
	if err != nil {
		return fmt.Errorf("failed to encode characters: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	c.logger.Debug().
		Str("path", c.path).
		Int("count", len(characters)).
		Msg("Wrote characters to cache")

	return nil
}

// Clear removes the cache file. A missing file is not an error.
func (c *FileCache) Clear() error {
	if err := os.Remove(c.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove cache file: %w", err)
	}
	return nil
}
