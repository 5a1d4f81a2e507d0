package swapi_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/swapisort/swapi"
	"github.com/s0up4200/swapisort/swapi/swapitest"
)

const (
	page1 = "https://swapi.test/api/people/"
	page2 = "https://swapi.test/api/people/?page=2"
	page3 = "https://swapi.test/api/people/?page=3"
)

func threePages() *swapitest.Fetcher {
	return swapitest.New(map[string]string{
		page1: `{"count":5,"next":"` + page2 + `","previous":null,"results":[
			{"name":"Luke Skywalker","species":[]},
			{"name":"C-3PO","species":["https://swapi.test/api/species/2/"]}]}`,
		page2: `{"count":5,"next":"` + page3 + `","results":[
			{"name":"R2-D2","species":["https://swapi.test/api/species/2/"]},
			{"name":"Darth Vader"}]}`,
		page3: `{"count":5,"next":null,"results":[
			{"name":"Leia Organa","species":[]}]}`,
	})
}

func names(characters []swapi.Character) []string {
	out := make([]string, 0, len(characters))
	for _, c := range characters {
		out = append(out, c.Name)
	}
	return out
}

func TestCollectCharacters(t *testing.T) {
	fetcher := threePages()

	characters, err := swapi.CollectCharacters(context.Background(), fetcher, page1, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, []string{"Luke Skywalker", "C-3PO", "R2-D2", "Darth Vader", "Leia Organa"}, names(characters))
	assert.Equal(t, []string{page1, page2, page3}, fetcher.Requested())
	assert.Equal(t, []string{}, characters[3].Species)
}

func TestCollectCharactersSinglePage(t *testing.T) {
	fetcher := swapitest.New(map[string]string{
		page1: `{"results":[{"name":"Yoda","species":["https://swapi.test/api/species/6/"]}]}`,
	})

	characters, err := swapi.CollectCharacters(context.Background(), fetcher, page1, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"Yoda"}, names(characters))
	assert.Equal(t, 1, fetcher.TotalCalls())
}

func TestCollectCharactersEmpty(t *testing.T) {
	fetcher := swapitest.New(map[string]string{
		page1: `{"count":0,"next":null,"results":[]}`,
	})

	characters, err := swapi.CollectCharacters(context.Background(), fetcher, page1, zerolog.Nop())
	require.NoError(t, err)
	assert.NotNil(t, characters)
	assert.Empty(t, characters)
}

func TestCollectCharactersServerError(t *testing.T) {
	fetcher := threePages()
	fetcher.FailAll = http.StatusInternalServerError

	characters, err := swapi.CollectCharacters(context.Background(), fetcher, page1, zerolog.Nop())
	require.Error(t, err)
	assert.Nil(t, characters)

	var fetchErr *swapi.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, page1, fetchErr.URL)
	assert.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)
}

func TestCollectCharactersDiscardsPartialResults(t *testing.T) {
	fetcher := threePages()
	fetcher.Status[page3] = http.StatusBadGateway

	characters, err := swapi.CollectCharacters(context.Background(), fetcher, page1, zerolog.Nop())
	require.Error(t, err)
	assert.Nil(t, characters)

	var fetchErr *swapi.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, page3, fetchErr.URL)
	assert.Equal(t, http.StatusBadGateway, fetchErr.StatusCode)
	assert.Equal(t, 3, fetcher.TotalCalls())
}

func TestCollectCharactersLoop(t *testing.T) {
	fetcher := swapitest.New(map[string]string{
		page1: `{"next":"` + page2 + `","results":[{"name":"Luke Skywalker"}]}`,
		page2: `{"next":"` + page1 + `","results":[{"name":"C-3PO"}]}`,
	})

	characters, err := swapi.CollectCharacters(context.Background(), fetcher, page1, zerolog.Nop())
	assert.ErrorIs(t, err, swapi.ErrPaginationLoop)
	assert.Nil(t, characters)
	assert.Equal(t, 2, fetcher.TotalCalls())
}

func TestCollectCharactersInvalidRecord(t *testing.T) {
	fetcher := swapitest.New(map[string]string{
		page1: `{"next":null,"results":[{"species":[]}]}`,
	})

	_, err := swapi.CollectCharacters(context.Background(), fetcher, page1, zerolog.Nop())
	assert.ErrorIs(t, err, swapi.ErrInvalidCharacter)
}

func TestCollectCharactersCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := swapi.CollectCharacters(ctx, threePages(), page1, zerolog.Nop())
	assert.ErrorIs(t, err, context.Canceled)
}
