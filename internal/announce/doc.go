// Package announce provides types and functions for school facility-usage
// announcements.
//
// The announce package handles announcement representation, date resolution,
// and result aggregation. Source sites publish dates either as Western
// calendar dates (2025-11-21) or as Republic-of-China calendar dates
// (114-11-21); ParseDate resolves both into absolute dates anchored to the
// publishers' UTC+8 timezone.
package announce
