package scraper

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

// nearbyDate finds a date-shaped substring in the text surrounding an
// anchor. The sites publish the date as loose sibling text with no
// machine-readable association to the title link, so the only recoverable
// signal is "some ancestor's flattened text contains a date". The walk
// starts at the anchor's immediate parent and climbs at most maxDepth
// levels; the closest ancestor with a match wins, regardless of how many
// dates a higher ancestor would contain.
//
// Pure function of the parsed tree: no fetching, no mutation.
func nearbyDate(anchor *goquery.Selection, pattern *regexp.Regexp, maxDepth int) (string, bool) {
	node := anchor.Parent()
	for depth := 0; depth < maxDepth && node.Length() > 0; depth++ {
		if match := pattern.FindString(node.Text()); match != "" {
			return match, true
		}
		node = node.Parent()
	}
	return "", false
}
