package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func anchorIn(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing HTML: %v", err)
	}
	anchor := doc.Find("a").First()
	if anchor.Length() == 0 {
		t.Fatal("fixture has no anchor")
	}
	return anchor
}

func TestNearbyDateClosestAncestorWins(t *testing.T) {
	// The parent row carries one date, the list container another; the walk
	// must stop at the closer one.
	anchor := anchorIn(t, `
		<div class="list">
			<span>2025-01-01</span>
			<div class="row">
				<a href="/n/1">場地開放公告</a>
				<span>2025-06-30</span>
			</div>
		</div>`)

	got, ok := nearbyDate(anchor, dateShaped, 4)
	if !ok {
		t.Fatal("expected a date match")
	}
	if got != "2025-06-30" {
		t.Errorf("closest ancestor should win, got %s", got)
	}
}

func TestNearbyDateRespectsDepthBound(t *testing.T) {
	// Date sits five levels above the anchor; a walk bounded at four must
	// not find it.
	html := `
		<div>2025-06-30
			<div><div><div><div>
				<a href="/n/1">場地開放公告</a>
			</div></div></div></div>
		</div>`

	anchor := anchorIn(t, html)
	if _, ok := nearbyDate(anchor, dateShaped, 4); ok {
		t.Error("date beyond the depth bound should not match")
	}
	if got, ok := nearbyDate(anchor, dateShaped, 5); !ok || got != "2025-06-30" {
		t.Errorf("depth 5 should reach the date, got %q ok=%v", got, ok)
	}
}

func TestNearbyDateNoMatch(t *testing.T) {
	anchor := anchorIn(t, `<div><div><a href="/n/1">場地開放公告</a><span>日期未定</span></div></div>`)
	if _, ok := nearbyDate(anchor, dateShaped, 4); ok {
		t.Error("expected no match when no ancestor text is date-shaped")
	}
}

func TestNearbyDateMatchesROCForm(t *testing.T) {
	anchor := anchorIn(t, `<div><a href="/n/2">羽球場整修公告</a> 114.07.01</div>`)
	got, ok := nearbyDate(anchor, dateShaped, 4)
	if !ok || got != "114.07.01" {
		t.Errorf("expected ROC date match, got %q ok=%v", got, ok)
	}
}
