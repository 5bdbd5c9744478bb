package scraper

import (
	"fmt"
	"net/url"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/liangyc/courtwatch/internal/announce"
)

// TableAdapter extracts announcements from simple server-rendered listings:
// every row-like element that contains both a date-shaped substring and a
// link is one announcement. Table sites render the whole listing on one
// page, so this adapter never reports a next page.
type TableAdapter struct {
	site Site
}

// Parse extracts one candidate per qualifying row.
func (a *TableAdapter) Parse(doc *goquery.Document, pageURL string) (PageResult, error) {
	base, err := url.Parse(a.site.baseURL())
	if err != nil {
		return PageResult{}, fmt.Errorf("parsing base url: %w", err)
	}

	minLen := a.site.minTitleLen()
	var candidates []announce.Candidate

	doc.Find("tr, li").Each(func(_ int, row *goquery.Selection) {
		dateText := dateShaped.FindString(row.Text())
		if dateText == "" {
			return
		}

		// First qualifying anchor in the row is the title link; the rest
		// are attachments or icons.
		row.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
			title := cleanText(link.Text())
			if utf8.RuneCountInString(title) < minLen {
				return true
			}
			href, _ := link.Attr("href")
			fullURL := resolveHref(base, href)
			if fullURL == "" {
				return true
			}
			candidates = append(candidates, announce.Candidate{
				Site:     a.site.Name,
				Title:    title,
				URL:      fullURL,
				DateText: dateText,
			})
			return false
		})
	})

	return PageResult{Candidates: announce.Dedupe(candidates)}, nil
}
