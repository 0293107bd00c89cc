// Package cli implements the command-line interface for ironman-results.
//
// The command prompts for a race page URL and an output base name (both
// skippable via flags), then runs the download pipeline: page load, year
// enumeration, and one results fetch plus CSV write per year.
package cli
