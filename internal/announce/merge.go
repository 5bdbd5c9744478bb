package announce

import "sort"

// Merge combines per-site accepted lists into the final result set: most
// recent first, ties keeping their original arrival order, then a global
// dedupe by URL (first occurrence wins).
func Merge(lists ...[]Announcement) []Announcement {
	var merged []Announcement
	for _, list := range lists {
		merged = append(merged, list...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})

	seen := make(map[string]bool, len(merged))
	unique := make([]Announcement, 0, len(merged))
	for _, item := range merged {
		if seen[item.URL] {
			continue
		}
		seen[item.URL] = true
		unique = append(unique, item)
	}
	return unique
}
