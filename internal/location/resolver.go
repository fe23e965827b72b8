package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/chronos-mcp/chronos/internal/geocode"
	"github.com/chronos-mcp/chronos/internal/logging"
	"github.com/chronos-mcp/chronos/internal/tzindex"
)

// Kind discriminates the three mutually exclusive resolution outcomes.
type Kind int

const (
	// KindNone means no location was resolved (not requested, or failed).
	KindNone Kind = iota
	// KindOffset is a fixed UTC offset with no DST rules.
	KindOffset
	// KindNamedZone is an IANA timezone with full calendar-aware rules.
	KindNamedZone
)

// ResolvedLocation is the outcome of a single resolution attempt. Exactly
// one kind is active. Warning is non-empty if and only if resolution was
// attempted and failed; the "no location requested" case carries neither
// a warning nor a display name.
type ResolvedLocation struct {
	Kind          Kind
	OffsetSeconds int    // set for KindOffset
	ZoneID        string // set for KindNamedZone
	DisplayName   string
	Warning       string

	loc *time.Location
}

// Resolved reports whether a concrete timezone was found.
func (r ResolvedLocation) Resolved() bool {
	return r.Kind != KindNone
}

// Location returns the resolved *time.Location, or UTC when unresolved.
func (r ResolvedLocation) Location() *time.Location {
	if r.loc == nil {
		return time.UTC
	}
	return r.loc
}

// Geocoder resolves a free-text place name to its best match.
// *geocode.Client satisfies this.
type Geocoder interface {
	Search(ctx context.Context, query string) (*geocode.Place, error)
}

// Resolver turns tool location parameters into a concrete timezone.
// It is stateless apart from its injected collaborators and safe for
// concurrent use.
type Resolver struct {
	geocoder Geocoder
	index    *tzindex.Index
	logger   *slog.Logger
}

// NewResolver creates a resolver. The timezone index handle is shared,
// built once per process by tzindex.
func NewResolver(geocoder Geocoder, index *tzindex.Index, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		geocoder: geocoder,
		index:    index,
		logger:   logger,
	}
}

// offsetPattern matches a signed UTC offset: +05:30, -0500, +02:00.
var offsetPattern = regexp.MustCompile(`^([+-])(\d{2}):?(\d{2})$`)

// Resolve applies the parameter priority tz > city > country: the first
// non-empty parameter (after trimming) wins and the others are ignored
// entirely. All failures degrade to KindNone with a warning; network and
// lookup errors never escape this layer. When all parameters are empty the
// zero ResolvedLocation is returned (no warning).
func (r *Resolver) Resolve(ctx context.Context, tz, country, city string) ResolvedLocation {
	tz = strings.TrimSpace(tz)
	country = strings.TrimSpace(country)
	city = strings.TrimSpace(city)

	switch {
	case tz != "":
		return r.resolveTimezone(tz)
	case city != "":
		return r.resolvePlace(ctx, city, cityWarning)
	case country != "":
		return r.resolvePlace(ctx, country, countryWarning)
	}
	return ResolvedLocation{}
}

// resolveTimezone interprets tz first as an IANA zone name, then as a
// numeric UTC offset.
func (r *Resolver) resolveTimezone(tz string) ResolvedLocation {
	if loc, err := time.LoadLocation(tz); err == nil {
		return ResolvedLocation{
			Kind:        KindNamedZone,
			ZoneID:      tz,
			DisplayName: tz,
			loc:         loc,
		}
	}

	if m := offsetPattern.FindStringSubmatch(tz); m != nil {
		hours, _ := strconv.Atoi(m[2])
		minutes, _ := strconv.Atoi(m[3])
		if hours <= 14 && minutes < 60 {
			seconds := hours*3600 + minutes*60
			if m[1] == "-" {
				seconds = -seconds
			}
			name := fmt.Sprintf("UTC%s%02d:%02d", m[1], hours, minutes)
			return ResolvedLocation{
				Kind:          KindOffset,
				OffsetSeconds: seconds,
				DisplayName:   name,
				loc:           time.FixedZone(name, seconds),
			}
		}
	}

	return ResolvedLocation{
		Warning: fmt.Sprintf("Unknown timezone %q. Use an IANA zone name like \"Europe/Warsaw\" or a UTC offset like \"+05:30\" or \"-0500\".", tz),
	}
}

// resolvePlace geocodes a free-text place name and maps its coordinates to
// an IANA zone. Every failure mode (no match, transport error, coordinates
// outside known zones, unloadable zone id) collapses into the same warning.
func (r *Resolver) resolvePlace(ctx context.Context, query string, warn func(string) string) ResolvedLocation {
	place, err := r.geocoder.Search(ctx, query)
	if err != nil {
		if !errors.Is(err, geocode.ErrNotFound) {
			r.logger.Debug("geocoding failed",
				logging.Operation("resolve_place"),
				logging.Query(query),
				logging.Err(err))
		}
		return ResolvedLocation{Warning: warn(query)}
	}

	zoneID, ok := r.index.ZoneID(place.Lat, place.Lon)
	if !ok {
		r.logger.Debug("no timezone for coordinates",
			logging.Operation("resolve_place"),
			logging.Query(query))
		return ResolvedLocation{Warning: warn(query)}
	}

	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		r.logger.Debug("failed to load resolved zone",
			logging.Operation("resolve_place"),
			logging.Zone(zoneID),
			logging.Err(err))
		return ResolvedLocation{Warning: warn(query)}
	}

	return ResolvedLocation{
		Kind:        KindNamedZone,
		ZoneID:      zoneID,
		DisplayName: compressDisplayName(place.DisplayName),
		loc:         loc,
	}
}

func cityWarning(query string) string {
	return fmt.Sprintf("Could not resolve city %q to a timezone. Try a major city nearby, a country, or set the timezone directly.", query)
}

func countryWarning(query string) string {
	return fmt.Sprintf("Could not resolve country %q to a timezone. Try the full country name, a major city, or set the timezone directly.", query)
}

// compressDisplayName shortens a comma-separated geocoder display name
// with more than two segments to "first, last", dropping administrative
// middle segments.
func compressDisplayName(name string) string {
	parts := strings.Split(name, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) > 2 {
		return parts[0] + ", " + parts[len(parts)-1]
	}
	return strings.Join(parts, ", ")
}
