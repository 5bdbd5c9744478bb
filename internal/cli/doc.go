// Package cli implements the courtwatch command: load the site
// configuration, run the aggregation, and render the accepted announcements
// plus the per-site decision trace. Everything here is presentation
// plumbing around the scraping core: the cache, the progress logging and
// the colored trace output all live on this side of the boundary.
package cli
