package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/chronos-mcp/chronos/internal/calendars"
	"github.com/chronos-mcp/chronos/internal/location"
	"github.com/chronos-mcp/chronos/internal/logging"
)

// CurrentTimeRequest carries the get_current_time parameters. Calendars is
// a comma-separated list of calendar names; all fields may be empty.
type CurrentTimeRequest struct {
	Calendars string
	Timezone  string
	Country   string
	City      string
}

// CurrentTime builds the get_current_time report. The composition order is
// fixed: failure warning with retry tip, header, Gregorian date plus
// calendar sections in caller order, unknown-calendar notices, UTC
// reference (only when a location resolved), NTP fallback notice last.
func (b *Builder) CurrentTime(ctx context.Context, req CurrentTimeRequest) string {
	res := b.clock.Now(ctx, b.ntpServer)
	loc := b.resolver.Resolve(ctx, req.Timezone, req.Country, req.City)

	hasLocation := strings.TrimSpace(req.Timezone) != "" ||
		strings.TrimSpace(req.Country) != "" ||
		strings.TrimSpace(req.City) != ""

	display := res.Time
	if loc.Resolved() {
		display = res.Time.In(loc.Location())
	}

	var blocks []string

	switch {
	case hasLocation && loc.Resolved():
		header := []string{
			"Local Time: " + display.Format(timeLayout),
			"Day: " + display.Weekday().String(),
			"Location: " + loc.DisplayName,
			timezoneLine(loc, display),
			"UTC Offset: " + formatOffset(display),
		}
		if loc.Kind == location.KindNamedZone {
			header = append(header, "DST Active: "+yesNo(display.IsDST()))
		}
		blocks = append(blocks, strings.Join(header, "\n"))

	case hasLocation:
		blocks = append(blocks,
			"Warning: "+loc.Warning+"\n"+retryTip,
			"UTC Time: "+res.Time.Format(timeLayout)+"\nDay: "+res.Time.Weekday().String(),
		)

	default:
		blocks = append(blocks,
			"UTC Time: "+res.Time.Format(timeLayout)+"\nDay: "+res.Time.Weekday().String(),
		)
	}

	if names := splitCalendarNames(req.Calendars); len(names) > 0 {
		blocks = append(blocks, fmt.Sprintf("Date: %s (Gregorian)", display.Format("2006-01-02")))

		var unknown []string
		for _, name := range names {
			cal, ok := calendars.Parse(name)
			if !ok {
				unknown = append(unknown, fmt.Sprintf("(Note: Unknown calendar format ignored: %s)", name))
				continue
			}
			blocks = append(blocks, cal.Render(display))
		}
		if len(unknown) > 0 {
			blocks = append(blocks, strings.Join(unknown, "\n"))
		}
	}

	if hasLocation && loc.Resolved() {
		blocks = append(blocks, "UTC Reference: "+res.Time.Format(timeLayout))
	}
	if !res.FromNTP {
		blocks = append(blocks, ntpFallbackNotice)
	}

	b.logger.Debug("built current time report",
		logging.Operation("current_time"),
		logging.Zone(loc.ZoneID))

	return strings.Join(blocks, "\n\n")
}

// splitCalendarNames splits the comma-separated calendar list, trimming
// each entry and dropping empty ones. Order and repeats are preserved.
func splitCalendarNames(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	var names []string
	for _, part := range strings.Split(csv, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
