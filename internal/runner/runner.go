// Package runner orchestrates a full aggregation run: paginate each
// configured site in turn, filter the extracted candidates, and merge the
// accepted announcements into one sorted result set. One site's broken
// markup or dead server never aborts the others.
package runner

import (
	"fmt"
	"time"

	"github.com/liangyc/courtwatch/internal/announce"
	"github.com/liangyc/courtwatch/internal/filter"
	"github.com/liangyc/courtwatch/internal/scraper"
)

// Options holds the per-run filter and pagination settings.
type Options struct {
	// Keywords are OR-combined substring matches against titles.
	Keywords []string
	// MaxAgeDays is the recency window.
	MaxAgeDays int
	// MaxPages bounds pagination per site.
	MaxPages int
	// Now anchors the recency window; zero means the current time in the
	// publishers' timezone.
	Now time.Time
}

// SiteTrace is the ordered diagnostic record for one site: which pages were
// fetched, what failed, and the accept/reject decision for every candidate.
type SiteTrace struct {
	Site      string            `json:"site"`
	Pages     []string          `json:"pages"`
	Errors    []string          `json:"errors,omitempty"`
	Decisions []filter.Decision `json:"decisions"`
	// Fatal is set when a site's processing paniced; the run continues
	// with the other sites.
	Fatal string `json:"fatal,omitempty"`
}

// Report is the result of one aggregation run.
type Report struct {
	// Announcements is the merged accepted set, most recent first,
	// deduplicated by URL.
	Announcements []announce.Announcement `json:"announcements"`
	// Traces holds one entry per configured site, in configuration order.
	Traces []SiteTrace `json:"traces"`
}

// Run processes every site sequentially and aggregates the results. It never
// returns an error: per-site failures of any kind end up in the site's
// trace, and the report always carries whatever was extracted.
func Run(fetcher scraper.Fetcher, sites []scraper.Site, opts Options) Report {
	now := opts.Now
	if now.IsZero() {
		now = time.Now().In(announce.Timezone)
	}

	var report Report
	perSite := make([][]announce.Announcement, 0, len(sites))

	for _, site := range sites {
		accepted, trace := runSite(fetcher, site, opts, now)
		report.Traces = append(report.Traces, trace)
		perSite = append(perSite, accepted)
	}

	report.Announcements = announce.Merge(perSite...)
	return report
}

// runSite is the per-site fault boundary: a panic while scraping or
// filtering one site is recorded as fatal for that site only.
func runSite(fetcher scraper.Fetcher, site scraper.Site, opts Options, now time.Time) (accepted []announce.Announcement, trace SiteTrace) {
	trace.Site = site.Name

	defer func() {
		if r := recover(); r != nil {
			trace.Fatal = fmt.Sprintf("panic: %v", r)
			accepted = nil
		}
	}()

	candidates, pageTrace := scraper.Paginate(fetcher, site, opts.MaxPages)
	trace.Pages = pageTrace.Pages
	trace.Errors = pageTrace.Errors

	accepted, trace.Decisions = filter.Run(candidates, opts.Keywords, opts.MaxAgeDays, now)
	return accepted, trace
}
