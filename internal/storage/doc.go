// Package storage handles writing per-year result files.
//
// Each successfully processed subevent produces one CSV file named
// {baseName}_{year}.csv in the output directory. Writes replace any
// existing file of the same name, so repeated runs are idempotent.
package storage
