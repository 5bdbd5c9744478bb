package scraper

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/liangyc/courtwatch/internal/announce"
)

const (
	// DefaultMaxPages bounds pagination when the caller does not say.
	DefaultMaxPages = 3
	// MaxPagesCap is the hard ceiling against adversarial pagination loops.
	MaxPagesCap = 10
)

// pageState tracks the pagination state machine for one site.
type pageState int

const (
	stateFetching pageState = iota
	stateParsing
	stateAdvancing
	stateDone
	stateFailed
)

// Trace records what happened while paginating one site, for diagnostic
// display alongside the filter decisions.
type Trace struct {
	// Pages holds the URLs fetched, in order.
	Pages []string `json:"pages"`
	// Errors holds transport and parse failures. A failure ends the site's
	// pagination but already-collected pages are still returned.
	Errors []string `json:"errors,omitempty"`
}

// Paginate walks a site's listing pages, collecting candidates until the
// adapter reports no next page, maxPages is reached, or the next locator
// loops back to the listing URL. A fetch failure on page N preserves the
// candidates from pages 1..N-1.
func Paginate(fetcher Fetcher, site Site, maxPages int) ([]announce.Candidate, Trace) {
	var trace Trace

	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	if maxPages > MaxPagesCap {
		maxPages = MaxPagesCap
	}

	adapter, err := NewAdapter(site)
	if err != nil {
		trace.Errors = append(trace.Errors, err.Error())
		return nil, trace
	}

	var (
		all     []announce.Candidate
		body    []byte
		result  PageResult
		current = site.ListingURL
		fetched = 0
		state   = stateFetching
	)

	for {
		switch state {
		case stateFetching:
			body, err = fetcher.Fetch(current)
			if err != nil {
				trace.Errors = append(trace.Errors, fmt.Sprintf("transport: %s: %v", current, err))
				state = stateFailed
				continue
			}
			trace.Pages = append(trace.Pages, current)
			fetched++
			state = stateParsing

		case stateParsing:
			doc, perr := goquery.NewDocumentFromReader(bytes.NewReader(body))
			if perr != nil {
				trace.Errors = append(trace.Errors, fmt.Sprintf("parse: %s: %v", current, perr))
				state = stateFailed
				continue
			}
			result, err = adapter.Parse(doc, current)
			if err != nil {
				trace.Errors = append(trace.Errors, fmt.Sprintf("parse: %s: %v", current, err))
				state = stateFailed
				continue
			}
			all = append(all, result.Candidates...)
			state = stateAdvancing

		case stateAdvancing:
			switch {
			case result.NextPage == "":
				state = stateDone
			case fetched >= maxPages:
				state = stateDone
			case result.NextPage == site.ListingURL:
				// Cycle guard: some sites link the last page back to the
				// first.
				state = stateDone
			default:
				current = result.NextPage
				state = stateFetching
			}

		case stateDone, stateFailed:
			// URLs are uniqued across the site's whole result set, not
			// just per page.
			return announce.Dedupe(all), trace
		}
	}
}
