package nba

import (
	"errors"
	"fmt"
)

// FetchError wraps any failure against the stats provider (transport,
// unexpected status, malformed payload), so callers can tell a provider
// problem apart from their own errors.
type FetchError struct {
	Endpoint string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("nba stats fetch %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFetchError reports whether err originated in the stats provider client.
func IsFetchError(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}
