package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/swapisort/swapi"
)

func sampleCharacters() []swapi.Character {
	return []swapi.Character{
		{
			Name:      "Luke Skywalker",
			Height:    "172",
			Gender:    "male",
			Films:     []string{"https://swapi.dev/api/films/1/"},
			Species:   []string{},
			Vehicles:  []string{},
			Starships: []string{"https://swapi.dev/api/starships/12/"},
			URL:       "https://swapi.dev/api/people/1/",
		},
		{
			Name:      "C-3PO",
			Films:     []string{},
			Species:   []string{"https://swapi.dev/api/species/2/"},
			Vehicles:  []string{},
			Starships: []string{},
		},
	}
}

type countingCollector struct {
	calls      int
	characters []swapi.Character
	err        error
}

func (c *countingCollector) collect(ctx context.Context) ([]swapi.Character, error) {
	c.calls++
	return c.characters, c.err
}

func TestLoadFetchesWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characters.json")
	cache := NewFileCache(path, zerolog.Nop())
	collector := &countingCollector{characters: sampleCharacters()}

	characters, err := cache.Load(context.Background(), collector.collect)
	require.NoError(t, err)
	assert.Equal(t, sampleCharacters(), characters)
	assert.Equal(t, 1, collector.calls)

	exists, err := cache.Exists()
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characters.json")
	cache := NewFileCache(path, zerolog.Nop())

	first := &countingCollector{characters: sampleCharacters()}
	_, err := cache.Load(context.Background(), first.collect)
	require.NoError(t, err)

	second := &countingCollector{err: errors.New("network must not be used")}
	characters, err := NewFileCache(path, zerolog.Nop()).Load(context.Background(), second.collect)
	require.NoError(t, err)

	assert.Equal(t, sampleCharacters(), characters)
	assert.Zero(t, second.calls)
}

func TestWriteFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characters.json")
	cache := NewFileCache(path, zerolog.Nop())
	require.NoError(t, cache.Write(sampleCharacters()[1:]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "[\n    {\n        \"name\": \"C-3PO\""), text)
	assert.Contains(t, text, "        \"species\": [\n            \"https://swapi.dev/api/species/2/\"\n        ]")
}

func TestWriteEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characters.json")
	cache := NewFileCache(path, zerolog.Nop())
	require.NoError(t, cache.Write(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	characters, err := cache.Read()
	require.NoError(t, err)
	assert.NotNil(t, characters)
	assert.Empty(t, characters)
}

func TestLoadCollectError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characters.json")
	cache := NewFileCache(path, zerolog.Nop())
	fetchErr := &swapi.FetchError{URL: "https://swapi.dev/api/people/", StatusCode: 500}

	characters, err := cache.Load(context.Background(), (&countingCollector{err: fetchErr}).collect)
	require.Error(t, err)
	assert.Nil(t, characters)
	assert.ErrorIs(t, err, fetchErr)

	exists, err := cache.Exists()
	require.NoError(t, err)
	assert.False(t, exists, "failed fetch must not create the cache file")
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characters.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name": "Luke"`), 0o644))

	collector := &countingCollector{characters: sampleCharacters()}
	_, err := NewFileCache(path, zerolog.Nop()).Load(context.Background(), collector.collect)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode cache file")
	assert.Zero(t, collector.calls)
}

func TestRefreshOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characters.json")
	cache := NewFileCache(path, zerolog.Nop())
	require.NoError(t, cache.Write(sampleCharacters()))

	fresh := []swapi.Character{{Name: "Yoda", Species: []string{}}}
	collector := &countingCollector{characters: fresh}
	characters, err := cache.Refresh(context.Background(), collector.collect)
	require.NoError(t, err)
	assert.Equal(t, fresh, characters)

	stored, err := cache.Read()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Yoda", stored[0].Name)
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characters.json")
	cache := NewFileCache(path, zerolog.Nop())

	require.NoError(t, cache.Clear(), "clearing a missing file is not an error")

	require.NoError(t, cache.Write(sampleCharacters()))
	require.NoError(t, cache.Clear())

	exists, err := cache.Exists()
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, DefaultFile, NewFileCache("", zerolog.Nop()).Path())
}
