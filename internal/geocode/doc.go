// Package geocode provides a minimal client for Nominatim-compatible
// geocoding services.
//
// Only forward search is implemented: a free-text city or country name is
// resolved to the best match's coordinates and display name. Requests carry
// a bounded timeout and a custom User-Agent as required by the public
// Nominatim usage policy.
package geocode
