// Package tabscrape scrapes the first HTML table from a browser-rendered page
// and returns it as a rectangular, in-memory table.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, slog/).
package tabscrape
