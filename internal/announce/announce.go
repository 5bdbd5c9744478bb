package announce

import "time"

// Candidate is one announcement as extracted from a listing page, before
// date resolution and filtering. Immutable once emitted by an adapter.
type Candidate struct {
	Site     string `json:"site"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	DateText string `json:"date_text"`
}

// Announcement is a candidate whose date text has been resolved.
// A zero Date means the date text could not be parsed; such announcements
// are excluded from accepted results but kept in the decision trace.
type Announcement struct {
	Candidate
	Date time.Time `json:"date"`
}

// Valid reports whether the candidate carries both a title and a URL.
// Adapters never emit invalid candidates; this guards external callers.
func (c Candidate) Valid() bool {
	return c.Title != "" && c.URL != ""
}

// Dedupe removes candidates whose URL was already seen, keeping the first
// occurrence and preserving order. Responsive layouts often render the same
// link twice (desktop and mobile markup).
func Dedupe(items []Candidate) []Candidate {
	seen := make(map[string]bool, len(items))
	unique := make([]Candidate, 0, len(items))
	for _, item := range items {
		if seen[item.URL] {
			continue
		}
		seen[item.URL] = true
		unique = append(unique, item)
	}
	return unique
}
