package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chronos-mcp/chronos/internal/location"
	"github.com/chronos-mcp/chronos/internal/ntptime"
)

// timeLayout is the wall-clock format used in every report line.
const timeLayout = "2006-01-02 15:04:05"

const (
	ntpFallbackNotice = "(Note: NTP unavailable, using local server time)"
	retryTip          = "Tip: Try again with a different spelling, a nearby major city, or an explicit timezone."
)

// TimeSource supplies the current instant, preferring network time.
// *ntptime.Client satisfies this.
type TimeSource interface {
	Now(ctx context.Context, server string) ntptime.Result
}

// LocationResolver turns tool location parameters into a timezone.
// *location.Resolver satisfies this.
type LocationResolver interface {
	Resolve(ctx context.Context, tz, country, city string) location.ResolvedLocation
}

// Builder composes the text reports returned by the time tools. It holds
// no per-call state and is safe for concurrent use.
type Builder struct {
	clock     TimeSource
	resolver  LocationResolver
	ntpServer string
	logger    *slog.Logger
}

// NewBuilder creates a report builder. ntpServer is the default NTP pool
// address used whenever a tool call does not name one.
func NewBuilder(clock TimeSource, resolver LocationResolver, ntpServer string, logger *slog.Logger) *Builder {
	if ntpServer == "" {
		ntpServer = ntptime.DefaultServer
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		clock:     clock,
		resolver:  resolver,
		ntpServer: ntpServer,
		logger:    logger,
	}
}

// UTCTime reports the current UTC time from the given NTP server, falling
// back to the host clock with a notice.
func (b *Builder) UTCTime(ctx context.Context, server string) string {
	if server == "" {
		server = b.ntpServer
	}
	res := b.clock.Now(ctx, server)

	out := fmt.Sprintf("Current UTC Time from %s: %s\nDay: %s",
		server, res.Time.Format(timeLayout), res.Time.Weekday())
	if !res.FromNTP {
		out += "\n" + ntpFallbackNotice
	}
	return out
}

// formatOffset renders t's UTC offset as a signed zero-padded ±HH:MM.
func formatOffset(t time.Time) string {
	_, offset := t.Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("%s%02d:%02d", sign, offset/3600, offset%3600/60)
}

// timezoneLine renders the timezone name, appending the platform
// abbreviation when it is alphabetic and adds information beyond the name
// itself.
func timezoneLine(loc location.ResolvedLocation, t time.Time) string {
	name := loc.DisplayName
	if loc.Kind == location.KindNamedZone {
		name = loc.ZoneID
	}
	abbr, _ := t.Zone()
	if abbr != "" && abbr != name && !isNumericAbbr(abbr) {
		return fmt.Sprintf("Timezone: %s (%s)", name, abbr)
	}
	return "Timezone: " + name
}

// isNumericAbbr reports whether a zone abbreviation is a bare offset such
// as "+0530" rather than a real abbreviation like "CET".
func isNumericAbbr(abbr string) bool {
	return abbr[0] == '+' || abbr[0] == '-'
}
