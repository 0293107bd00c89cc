// Package results fetches athlete results from the race series results API
// and normalizes them into a fixed tabular schema.
//
// The results API is queried once per subevent. Each raw athlete record is
// mapped through a declarative column table onto 33 named columns, with
// empty-string fallback for fields the API omits, and the normalized rows
// are encoded as CSV with every data field quoted.
package results
