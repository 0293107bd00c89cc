package event

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/colinlord/ironman-results/internal/jsontree"
)

// ErrNoSubEvents reports a page document without a subevent list.
var ErrNoSubEvents = errors.New("no subevents found in page data")

// SubEvent is one year's running of a race series
type SubEvent struct {
	ID   string // opaque identifier used by the results API
	Name string // display name, e.g. "IRONMAN Lake Placid 2024"
	Year string // four-digit year extracted from the display name
}

// Skip records a subevent entry that could not be enumerated
type Skip struct {
	Name   string
	Reason string
}

var digitRun = regexp.MustCompile(`[0-9]+`)

// Enumerate walks the page document down to the subevent list and returns
// one SubEvent per entry that carries both an identifier and an extractable
// year. Entries missing either are returned as Skips rather than failing
// the run. Source order is preserved.
func Enumerate(doc any) ([]SubEvent, []Skip, error) {
	entries, ok := jsontree.List(doc, "props", "pageProps", "data", "subevents")
	if !ok || len(entries) == 0 {
		return nil, nil, ErrNoSubEvents
	}

	subs := make([]SubEvent, 0, len(entries))
	var skips []Skip
	for i, entry := range entries {
		id, _ := jsontree.String(entry, "wtc_eventid")
		primary, _ := jsontree.String(entry, "name")
		alt, _ := jsontree.String(entry, "title")

		name := primary
		if name == "" {
			name = alt
		}

		if id == "" {
			skips = append(skips, Skip{
				Name:   name,
				Reason: fmt.Sprintf("subevent %d has no event identifier", i),
			})
			continue
		}

		year := ExtractYear(primary)
		if year == "" {
			year = ExtractYear(alt)
		}
		if year == "" {
			skips = append(skips, Skip{
				Name:   name,
				Reason: fmt.Sprintf("no four-digit year in subevent name %q", name),
			})
			continue
		}

		subs = append(subs, SubEvent{ID: id, Name: name, Year: year})
	}

	return subs, skips, nil
}

// ExtractYear returns the first run of exactly four digits starting "20"
// in s, or "" when none exists.
func ExtractYear(s string) string {
	for _, run := range digitRun.FindAllString(s, -1) {
		if len(run) == 4 && strings.HasPrefix(run, "20") {
			return run
		}
	}
	return ""
}
