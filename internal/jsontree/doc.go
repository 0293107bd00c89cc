// Package jsontree provides present/absent lookups over generic parsed JSON
// documents. Every nested access returns an explicit ok flag instead of a
// zero value, so callers can tell a missing field from an empty one.
package jsontree
