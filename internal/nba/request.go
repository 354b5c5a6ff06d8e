package nba

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// statsHeaders are the headers stats.nba.com expects; requests without them
// are rejected.
var statsHeaders = map[string]string{
	"User-Agent":         "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Accept":             "application/json, text/plain, */*",
	"Referer":            "https://stats.nba.com/",
	"Origin":             "https://www.nba.com",
	"x-nba-stats-origin": "stats",
	"x-nba-stats-token":  "true",
}

// makeRequest performs a GET against the stats API. Throttled responses
// (429) are retried with exponential backoff; every other failure surfaces
// immediately.
func (c *Client) makeRequest(url string) (*http.Response, error) {
	if err := c.limiter.Wait(context.Background()); err != nil {
		return nil, fmt.Errorf("error waiting for rate limiter: %w", err)
	}

	backoffStrategy := backoff.NewExponentialBackOff()
	backoffStrategy.InitialInterval = 500 * time.Millisecond
	backoffStrategy.MaxInterval = 5 * time.Second
	backoffStrategy.MaxElapsedTime = 30 * time.Second

	var resp *http.Response
	operation := func() error {
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("error creating request: %w", err))
		}
		for key, value := range statsHeaders {
			req.Header.Set(key, value)
		}

		r, err := c.httpClient.Do(req)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("error sending request: %w", err))
		}

		if r.StatusCode == http.StatusTooManyRequests {
			r.Body.Close()
			return fmt.Errorf("request throttled with status %d", r.StatusCode)
		}

		if r.StatusCode != http.StatusOK {
			r.Body.Close()
			return backoff.Permanent(fmt.Errorf("API request failed with status code: %d", r.StatusCode))
		}

		resp = r
		return nil
	}

	if err := backoff.Retry(operation, backoffStrategy); err != nil {
		return nil, err
	}

	return resp, nil
}
