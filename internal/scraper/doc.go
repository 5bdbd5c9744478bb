// Package scraper provides HTTP fetching and tolerant HTML extraction for
// school facility-usage announcements.
//
// The source sites have no stable structural contract: each school's site
// renders its announcement listing differently and changes layout without
// notice. The scraper pairs each title link with a nearby date by walking
// outward from the anchor through a bounded number of ancestor elements,
// rather than relying on selectors that break on the next redesign. Two
// adapter variants cover the observed site families (simple server-rendered
// tables, and responsive nested layouts), and a pagination driver follows
// "next page" links up to a hard bound.
package scraper
