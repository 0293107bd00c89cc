package results

import (
	"github.com/colinlord/ironman-results/internal/jsontree"
)

// column maps one output header to a path in a raw athlete record. When the
// primary path is absent or empty and a fallback is set, the fallback path
// is tried before giving up; a field absent on both paths renders as "".
type column struct {
	header   string
	path     []string
	fallback []string
}

// columns is the full output schema. Order here is the column order of
// every produced document.
var columns = []column{
	{header: "Bib Number", path: []string{"BibNumber"}},
	{header: "Athlete Name", path: []string{"Contact", "FullName"}},
	{header: "Gender", path: []string{"AgeGroup", "Gender"}, fallback: []string{"Division", "Gender"}},
	{header: "City", path: []string{"Contact", "City"}},
	{header: "State", path: []string{"Contact", "State"}},
	{header: "Country", path: []string{"Contact", "Country"}},
	{header: "Division", path: []string{"Division", "Name"}, fallback: []string{"AgeGroup", "Name"}},
	{header: "Status", path: []string{"EventStatus"}},
	{header: "Finish Time", path: []string{"FinishTime"}},
	{header: "Swim Time", path: []string{"SwimTime"}},
	{header: "Transition 1 Time", path: []string{"Transition1Time"}},
	{header: "Bike Time", path: []string{"BikeTime"}},
	{header: "Transition 2 Time", path: []string{"Transition2Time"}},
	{header: "Run Time", path: []string{"RunTime"}},
	{header: "Finish Seconds", path: []string{"FinishTimeInSeconds"}},
	{header: "Swim Seconds", path: []string{"SwimTimeInSeconds"}},
	{header: "Transition 1 Seconds", path: []string{"Transition1TimeInSeconds"}},
	{header: "Bike Seconds", path: []string{"BikeTimeInSeconds"}},
	{header: "Transition 2 Seconds", path: []string{"Transition2TimeInSeconds"}},
	{header: "Run Seconds", path: []string{"RunTimeInSeconds"}},
	{header: "Overall Rank", path: []string{"FinishRankOverall"}},
	{header: "Gender Rank", path: []string{"FinishRankGender"}},
	{header: "Division Rank", path: []string{"FinishRankGroup"}},
	{header: "Swim Overall Rank", path: []string{"SwimRankOverall"}},
	{header: "Swim Gender Rank", path: []string{"SwimRankGender"}},
	{header: "Swim Division Rank", path: []string{"SwimRankGroup"}},
	{header: "Bike Overall Rank", path: []string{"BikeRankOverall"}},
	{header: "Bike Gender Rank", path: []string{"BikeRankGender"}},
	{header: "Bike Division Rank", path: []string{"BikeRankGroup"}},
	{header: "Run Overall Rank", path: []string{"RunRankOverall"}},
	{header: "Run Gender Rank", path: []string{"RunRankGender"}},
	{header: "Run Division Rank", path: []string{"RunRankGroup"}},
	{header: "Points", path: []string{"RankPoints"}},
}

// Headers returns the column names in output order.
func Headers() []string {
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.header
	}
	return headers
}

// Normalize maps raw athlete records onto the fixed column schema. Output
// rows parallel the input records one-to-one; every value passes through
// opaquely as a string.
func Normalize(records []any) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			v, ok := jsontree.String(rec, col.path...)
			if (!ok || v == "") && col.fallback != nil {
				v, _ = jsontree.String(rec, col.fallback...)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	return rows
}
