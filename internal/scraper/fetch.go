package scraper

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// Several of the school sites refuse requests without a browser-like
	// User-Agent.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	DefaultTimeout = 15 * time.Second
)

// Fetcher retrieves the raw HTML of a listing page. The pagination driver
// depends on this interface so callers can wrap the HTTP transport (for
// caching) or replace it entirely (for tests).
type Fetcher interface {
	Fetch(url string) ([]byte, error)
}

// HTTPFetcher fetches pages over HTTP with a single timeout and no retries.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher. A non-positive timeout falls back
// to DefaultTimeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch retrieves a page body. Non-2xx statuses, timeouts and connection
// errors are all reported as errors; the caller treats any of them as a
// transport failure for the current site.
func (f *HTTPFetcher) Fetch(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	return body, nil
}
