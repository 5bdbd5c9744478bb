// Package filter applies the recency window and keyword match to extracted
// announcement candidates, producing the accepted set plus one decision per
// candidate. Every exclusion carries a reason, so a user can see exactly why
// an announcement they expected is missing.
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/liangyc/courtwatch/internal/announce"
)

// Outcome classifies one candidate's filter decision.
type Outcome string

const (
	Accepted          Outcome = "accepted"
	RejectedNoDate    Outcome = "rejected_unparseable_date"
	RejectedExpired   Outcome = "rejected_expired"
	RejectedNoKeyword Outcome = "rejected_no_keyword"
)

// Decision records why one candidate was accepted or excluded.
// Decisions are append-only and live for a single fetch invocation.
type Decision struct {
	Candidate announce.Candidate `json:"candidate"`
	Outcome   Outcome            `json:"outcome"`
	Reason    string             `json:"reason"`
	// AgeDays is negative for future-dated announcements and zero when the
	// date could not be parsed.
	AgeDays int `json:"age_days"`
}

// Run filters candidates against a one-sided recency window and a
// case-sensitive keyword set. Keywords are OR-combined substring matches
// against the title. An expired announcement is rejected as expired even
// when it matches a keyword, so the trace shows the real reason it aged out.
//
// Future-dated announcements count as within the window: the window is a
// one-sided recency cutoff, not a range.
func Run(candidates []announce.Candidate, keywords []string, maxAgeDays int, now time.Time) ([]announce.Announcement, []Decision) {
	var accepted []announce.Announcement
	decisions := make([]Decision, 0, len(candidates))

	cutoff := now.AddDate(0, 0, -maxAgeDays)

	for _, c := range candidates {
		date := announce.ParseDate(c.DateText)
		if date.IsZero() {
			decisions = append(decisions, Decision{
				Candidate: c,
				Outcome:   RejectedNoDate,
				Reason:    fmt.Sprintf("date %q not recognized", c.DateText),
			})
			continue
		}

		ageDays := int(now.Sub(date).Hours() / 24)

		if !date.After(cutoff) {
			decisions = append(decisions, Decision{
				Candidate: c,
				Outcome:   RejectedExpired,
				Reason:    fmt.Sprintf("published %d days ago, outside the %d-day window", ageDays, maxAgeDays),
				AgeDays:   ageDays,
			})
			continue
		}

		keyword, ok := matchKeyword(c.Title, keywords)
		if !ok {
			decisions = append(decisions, Decision{
				Candidate: c,
				Outcome:   RejectedNoKeyword,
				Reason:    fmt.Sprintf("title has none of %s", strings.Join(keywords, ", ")),
				AgeDays:   ageDays,
			})
			continue
		}

		decisions = append(decisions, Decision{
			Candidate: c,
			Outcome:   Accepted,
			Reason:    fmt.Sprintf("matched %q, %d days old", keyword, ageDays),
			AgeDays:   ageDays,
		})
		accepted = append(accepted, announce.Announcement{Candidate: c, Date: date})
	}

	return accepted, decisions
}

// matchKeyword reports the first keyword contained in the title.
// The match is a case-sensitive substring test with no normalization.
func matchKeyword(title string, keywords []string) (string, bool) {
	for _, k := range keywords {
		if k != "" && strings.Contains(title, k) {
			return k, true
		}
	}
	return "", false
}
