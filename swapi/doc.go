// Package swapi provides a client for the Star Wars API (SWAPI).
//
// The package covers the small surface swapisort needs: decoding people and
// species records, walking the paginated people listing, and fetching single
// resources by URL.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := swapi.NewClient(
//		"https://swapi.dev/api",
//		logger,
//		swapi.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	characters, err := client.GetAllCharacters(ctx)
//
// # Fetcher
//
// Everything that talks to the network goes through the [Fetcher] interface,
// which maps a URL to a decoded JSON value. [Client] is the HTTP implementation;
// tests substitute a stub.
//
// # Error Handling
//
//   - FetchError: the server answered with a non-2xx status
//   - ErrInvalidResponse: the body was not the JSON we expected
//   - ErrInvalidCharacter: a character record had no name
//   - ErrPaginationLoop: a listing linked back to a page already visited
//
// Requests are never retried. Callers classify failures with errors.As:
//
//	var fetchErr *swapi.FetchError
//	if errors.As(err, &fetchErr) && fetchErr.IsNotFound() {
//		// Handle missing resource
//	}
package swapi
