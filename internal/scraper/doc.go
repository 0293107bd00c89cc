// Package scraper provides HTTP fetching and embedded-JSON extraction for
// race series pages.
//
// The scraper fetches a public race page and pulls out the JSON document the
// site embeds in its __NEXT_DATA__ script block, which carries the full list
// of per-year subevents for the series.
package scraper
