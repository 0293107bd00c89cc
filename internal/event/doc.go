// Package event provides the subevent model and enumeration for race series.
//
// A race series page embeds one subevent per year the race has run. The
// enumerator pairs each subevent's opaque identifier with the year pulled
// from its display name; entries missing either are reported as skips so a
// single malformed entry never aborts a run.
package event
