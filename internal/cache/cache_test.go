package cache

import (
	"errors"
	"os"
	"testing"
	"time"
)

type countingFetcher struct {
	calls int
	body  []byte
	err   error
}

func (f *countingFetcher) Fetch(string) ([]byte, error) {
	f.calls++
	return f.body, f.err
}

func TestCacheHitWithinTTL(t *testing.T) {
	c, err := New(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	upstream := &countingFetcher{body: []byte("<html>page</html>")}
	fetcher := c.Wrap(upstream)

	for i := 0; i < 3; i++ {
		body, err := fetcher.Fetch("https://example.edu.tw/news")
		if err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		if string(body) != "<html>page</html>" {
			t.Errorf("unexpected body: %s", body)
		}
	}

	if upstream.calls != 1 {
		t.Errorf("expected 1 upstream fetch, got %d", upstream.calls)
	}
}

func TestCacheExpiry(t *testing.T) {
	dir := t.TempDir()
	c, err := New(dir, time.Hour)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	url := "https://example.edu.tw/news"
	if err := c.Put(url, []byte("old")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	// Age the cached file past the TTL.
	stale := time.Now().Add(-2 * time.Hour)
	if err := os.Chtimes(c.pagePath(url), stale, stale); err != nil {
		t.Fatalf("Chtimes failed: %v", err)
	}

	if _, ok := c.Get(url); ok {
		t.Error("expected stale entry to miss")
	}

	upstream := &countingFetcher{body: []byte("fresh")}
	body, err := c.Wrap(upstream).Fetch(url)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if string(body) != "fresh" {
		t.Errorf("expected refetched body, got %s", body)
	}
	if upstream.calls != 1 {
		t.Errorf("expected upstream refetch, got %d calls", upstream.calls)
	}
}

func TestCacheDoesNotMaskFetchErrors(t *testing.T) {
	c, err := New(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	upstream := &countingFetcher{err: errors.New("unexpected status code: 500")}
	if _, err := c.Wrap(upstream).Fetch("https://example.edu.tw/news"); err == nil {
		t.Fatal("expected error to pass through")
	}
	if _, ok := c.Get("https://example.edu.tw/news"); ok {
		t.Error("failed fetches must not be cached")
	}
}
