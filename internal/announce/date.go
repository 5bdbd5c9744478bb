package announce

import (
	"regexp"
	"strconv"
	"time"
)

// All source sites publish in UTC+8; resolved dates are anchored there
// regardless of the local timezone.
var Timezone = time.FixedZone("UTC+8", 8*60*60)

// rocEpochOffset converts a Republic-of-China calendar year to a Western
// year (ROC year 114 = 2025).
const rocEpochOffset = 1911

var (
	westernDatePattern = regexp.MustCompile(`(\d{4})[.\-/](\d{1,2})[.\-/](\d{1,2})`)
	rocDatePattern     = regexp.MustCompile(`(\d{3})[.\-/](\d{1,2})[.\-/](\d{1,2})`)
)

// ParseDate resolves a raw date substring into an absolute calendar date.
// Returns time.Time{} (zero value) if no date can be recognized.
//
// A 4-digit Western year is tried before the 3-digit ROC form: the ROC
// pattern is a structural subset of Western strings, so trying it first
// misreads "2025-11-21" as ROC year 025.
func ParseDate(raw string) time.Time {
	if m := westernDatePattern.FindStringSubmatch(raw); m != nil {
		return makeDate(m[1], m[2], m[3], 0)
	}
	for _, idx := range rocDatePattern.FindAllStringSubmatchIndex(raw, -1) {
		// A digit immediately before the match means the 3-digit year is
		// the tail of a longer number, not a ROC year.
		if idx[0] > 0 && isDigit(raw[idx[0]-1]) {
			continue
		}
		year := raw[idx[2]:idx[3]]
		month := raw[idx[4]:idx[5]]
		day := raw[idx[6]:idx[7]]
		return makeDate(year, month, day, rocEpochOffset)
	}
	return time.Time{}
}

// makeDate builds a date from numeric components, treating any malformed
// component (month 13, day 32, April 31) as unparseable rather than letting
// time.Date normalize it into a different date.
func makeDate(yearText, monthText, dayText string, offset int) time.Time {
	year, err := strconv.Atoi(yearText)
	if err != nil {
		return time.Time{}
	}
	month, err := strconv.Atoi(monthText)
	if err != nil {
		return time.Time{}
	}
	day, err := strconv.Atoi(dayText)
	if err != nil {
		return time.Time{}
	}
	year += offset

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, Timezone)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}
	}
	return t
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
