// Package cache provides a TTL cache of fetched listing pages.
//
// The cache belongs to the presentation layer, not the scraping core: it
// wraps a scraper.Fetcher so repeated invocations within the TTL reuse the
// stored page bodies instead of re-fetching. Pages are stored as files under
// a data directory, keyed by a hash of the URL. The default location is
// ~/.cache/courtwatch/.
package cache

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/liangyc/courtwatch/internal/scraper"
)

// DefaultTTL is how long a cached page stays fresh.
const DefaultTTL = 10 * time.Minute

// Cache stores fetched page bodies on disk.
type Cache struct {
	dataDir string
	ttl     time.Duration
}

// New creates a cache rooted at dataDir. A leading ~ expands to the user's
// home directory; a non-positive TTL falls back to DefaultTTL.
func New(dataDir string, ttl time.Duration) (*Cache, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{dataDir: dataDir, ttl: ttl}, nil
}

// pagePath returns the file path for a URL's cached body.
func (c *Cache) pagePath(url string) string {
	sum := sha1.Sum([]byte(url))
	return filepath.Join(c.dataDir, fmt.Sprintf("page_%x.html", sum))
}

// Get returns the cached body for a URL if it is still fresh.
func (c *Cache) Get(url string) ([]byte, bool) {
	path := c.pagePath(url)
	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	if time.Since(info.ModTime()) > c.ttl {
		return nil, false
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return body, true
}

// Put stores a page body for a URL.
func (c *Cache) Put(url string, body []byte) error {
	if err := os.WriteFile(c.pagePath(url), body, 0644); err != nil {
		return fmt.Errorf("writing cached page: %w", err)
	}
	return nil
}

// Wrap decorates a fetcher with this cache.
func (c *Cache) Wrap(next scraper.Fetcher) scraper.Fetcher {
	return &cachingFetcher{cache: c, next: next}
}

type cachingFetcher struct {
	cache *Cache
	next  scraper.Fetcher
}

// Fetch serves fresh cached bodies and falls through to the wrapped fetcher
// otherwise. A failed cache write is ignored; the fetched body still flows
// to the caller.
func (f *cachingFetcher) Fetch(url string) ([]byte, error) {
	if body, ok := f.cache.Get(url); ok {
		return body, nil
	}
	body, err := f.next.Fetch(url)
	if err != nil {
		return nil, err
	}
	_ = f.cache.Put(url, body)
	return body, nil
}
