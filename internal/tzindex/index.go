package tzindex

import (
	"sync"

	"github.com/bradfitz/latlong"
)

// Index maps coordinates to IANA timezone identifiers. The underlying
// polygon tables are decoded on first use; the handle guarantees the
// decode happens at most once per process, even under concurrent first
// access, and the tables are read-only afterwards.
type Index struct {
	once sync.Once
}

var shared Index

// Shared returns the process-wide index handle. Resolvers receive this
// handle at construction time rather than reaching for package state.
func Shared() *Index {
	return &shared
}

// ZoneID returns the IANA zone identifier covering the given coordinates,
// or ok=false for coordinates outside any known zone polygon (open ocean,
// poles).
func (ix *Index) ZoneID(lat, lon float64) (string, bool) {
	ix.once.Do(func() {
		// First lookup pays the table-decode cost; force it under the
		// once guard so concurrent callers never race the decode.
		_ = latlong.LookupZoneName(0, 0)
	})

	zone := latlong.LookupZoneName(lat, lon)
	if zone == "" {
		return "", false
	}
	return zone, true
}
