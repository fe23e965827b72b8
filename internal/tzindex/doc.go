// Package tzindex wraps the geospatial timezone lookup behind an explicit
// handle with once-only initialization.
//
// Building the lookup tables is expensive while queries are cheap, so the
// tables are decoded at most once per process and shared read-only across
// all calls.
package tzindex
