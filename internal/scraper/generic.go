package scraper

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/liangyc/courtwatch/internal/announce"
)

// GenericAdapter ignores document structure entirely: it enumerates every
// anchor on the page and pairs each with a date found in nearby ancestor
// text. Used for responsive layouts where the table-row assumption does not
// hold — the same listing renders as a table on desktop and nested divs on
// mobile, sometimes both at once.
type GenericAdapter struct {
	site Site
}

// Parse extracts candidates from all anchors and locates the next-page link.
func (a *GenericAdapter) Parse(doc *goquery.Document, pageURL string) (PageResult, error) {
	base, err := url.Parse(a.site.baseURL())
	if err != nil {
		return PageResult{}, fmt.Errorf("parsing base url: %w", err)
	}

	minLen := a.site.minTitleLen()
	var candidates []announce.Candidate

	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		title := cleanText(link.Text())
		// Short titles are navigation chrome, filtered before the walk.
		if utf8.RuneCountInString(title) < minLen {
			return
		}

		dateText, ok := nearbyDate(link, dateShaped, defaultWalkDepth)
		if !ok {
			return
		}

		href, _ := link.Attr("href")
		fullURL := resolveHref(base, href)
		if fullURL == "" {
			return
		}

		candidates = append(candidates, announce.Candidate{
			Site:     a.site.Name,
			Title:    title,
			URL:      fullURL,
			DateText: dateText,
		})
	})

	return PageResult{
		Candidates: announce.Dedupe(candidates),
		NextPage:   a.findNextPage(doc, base),
	}, nil
}

// findNextPage returns the first anchor in document order whose text carries
// the next-page label and whose target is a real page: not a placeholder
// href, not a script pseudo-target, and not the listing URL itself.
func (a *GenericAdapter) findNextPage(doc *goquery.Document, base *url.URL) string {
	label := a.site.nextPageLabel()
	var next string

	doc.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		if !strings.Contains(link.Text(), label) {
			return true
		}
		href, _ := link.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || href == "#" || strings.HasPrefix(strings.ToLower(href), "javascript:") {
			return true
		}
		resolved := resolveHref(base, href)
		if resolved == "" || resolved == a.site.ListingURL {
			return true
		}
		next = resolved
		return false
	})

	return next
}
