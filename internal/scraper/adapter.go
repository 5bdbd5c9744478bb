package scraper

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/liangyc/courtwatch/internal/announce"
)

// AdapterKind selects the extraction strategy for a site family.
type AdapterKind string

const (
	// AdapterTable treats every row-like element as one announcement.
	AdapterTable AdapterKind = "table"
	// AdapterGeneric ignores document structure and works from anchors.
	AdapterGeneric AdapterKind = "generic"
)

const (
	// Titles shorter than this are navigation chrome ("首頁", "更多"),
	// not announcements.
	DefaultMinTitleLen = 5

	// DefaultNextPageLabel is the link text that marks the next listing page.
	DefaultNextPageLabel = "下一頁"

	// How many ancestor levels the generic adapter searches for a date.
	defaultWalkDepth = 4
)

// dateShaped matches both Western (2025-11-21) and ROC (114-11-21) date
// encodings with ., - or / separators. Resolution happens later in the
// announce package; adapters only need "looks like a date".
var dateShaped = regexp.MustCompile(`\d{3,4}[.\-/]\d{1,2}[.\-/]\d{1,2}`)

// Site is the static per-site configuration supplied by the caller.
// The scraper never mutates it.
type Site struct {
	// Name identifies the school in results and traces.
	Name string
	// ListingURL is the first page of the announcement listing; it doubles
	// as the pagination cycle guard.
	ListingURL string
	// BaseURL resolves relative hrefs. Empty means resolve against the
	// listing URL.
	BaseURL string
	// Adapter picks the extraction strategy.
	Adapter AdapterKind
	// MinTitleLen overrides DefaultMinTitleLen when positive.
	MinTitleLen int
	// NextPageLabel overrides DefaultNextPageLabel when non-empty.
	NextPageLabel string
}

// PageResult is what an adapter extracts from one listing page.
type PageResult struct {
	Candidates []announce.Candidate
	// NextPage is the resolved next-page URL, or empty when the page offers
	// no way forward.
	NextPage string
}

// Adapter extracts announcement candidates from a parsed listing page.
type Adapter interface {
	Parse(doc *goquery.Document, pageURL string) (PageResult, error)
}

// NewAdapter returns the adapter variant configured for the site.
func NewAdapter(site Site) (Adapter, error) {
	switch site.Adapter {
	case AdapterTable:
		return &TableAdapter{site: site}, nil
	case AdapterGeneric:
		return &GenericAdapter{site: site}, nil
	default:
		return nil, fmt.Errorf("unknown adapter kind: %q", site.Adapter)
	}
}

func (s Site) minTitleLen() int {
	if s.MinTitleLen > 0 {
		return s.MinTitleLen
	}
	return DefaultMinTitleLen
}

func (s Site) nextPageLabel() string {
	if s.NextPageLabel != "" {
		return s.NextPageLabel
	}
	return DefaultNextPageLabel
}

func (s Site) baseURL() string {
	if s.BaseURL != "" {
		return s.BaseURL
	}
	return s.ListingURL
}

// cleanText collapses runs of whitespace the way browsers render them.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// resolveHref joins a possibly-relative href against the site origin.
// Returns "" when the href cannot form an absolute URL.
func resolveHref(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if !resolved.IsAbs() {
		return ""
	}
	return resolved.String()
}
