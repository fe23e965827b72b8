package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chronos-mcp/chronos/internal/logging"
)

// TimeDistanceRequest carries the calculate_time_distance parameters.
// From and To accept the literal "now" or an ISO-8601 date / date-time;
// naive values are interpreted in the resolved location's zone (UTC when
// no location is given).
type TimeDistanceRequest struct {
	From     string
	To       string
	Unit     string
	Timezone string
	Country  string
	City     string
}

// naiveLayouts are tried in order for endpoint values without a zone
// designator. RFC3339 values are handled before these.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// TimeDistance builds the calculate_time_distance report. Unparseable
// endpoints, identical endpoints, and unknown units are usage errors
// returned to the caller; everything else is a best-effort report.
func (b *Builder) TimeDistance(ctx context.Context, req TimeDistanceRequest) (string, error) {
	loc := b.resolver.Resolve(ctx, req.Timezone, req.Country, req.City)

	from, fromUsedNow, fromNTP, err := b.parseEndpoint(ctx, "from_date", req.From, loc.Location())
	if err != nil {
		return "", err
	}
	to, toUsedNow, toNTP, err := b.parseEndpoint(ctx, "to_date", req.To, loc.Location())
	if err != nil {
		return "", err
	}

	// Endpoint lines render in the resolved zone even when the input
	// carried its own zone designator.
	from = from.In(loc.Location())
	to = to.In(loc.Location())

	if from.Equal(to) {
		return "", fmt.Errorf("from_date and to_date resolve to the same instant (%s); provide two different values",
			from.UTC().Format(timeLayout))
	}

	d := to.Sub(from)
	direction := "future"
	if d < 0 {
		direction = "past"
		d = -d
	}

	distance, err := formatDuration(d, req.Unit)
	if err != nil {
		return "", err
	}

	zoneLabel := "UTC"
	if loc.Resolved() {
		zoneLabel = loc.DisplayName
	}

	lines := []string{
		"Time Distance: " + distance,
		"Direction: " + direction,
		fmt.Sprintf("From: %s (%s)", from.Format(timeLayout), zoneLabel),
		fmt.Sprintf("To: %s (%s)", to.Format(timeLayout), zoneLabel),
		"From (UTC): " + from.UTC().Format(timeLayout),
		"To (UTC): " + to.UTC().Format(timeLayout),
	}
	if (fromUsedNow && !fromNTP) || (toUsedNow && !toNTP) {
		lines = append(lines, "", ntpFallbackNotice)
	}

	b.logger.Debug("built time distance report",
		logging.Operation("time_distance"),
		logging.Zone(loc.ZoneID))

	return strings.Join(lines, "\n"), nil
}

// parseEndpoint resolves one endpoint value: the literal "now" via the
// time source, otherwise one of the accepted layouts. The returned flags
// report whether the clock was consulted and whether NTP answered.
func (b *Builder) parseEndpoint(ctx context.Context, param, value string, loc *time.Location) (time.Time, bool, bool, error) {
	value = strings.TrimSpace(value)

	if strings.EqualFold(value, "now") {
		res := b.clock.Now(ctx, b.ntpServer)
		return res.Time.In(loc), true, res.FromNTP, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, false, false, nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, false, false, nil
		}
	}

	return time.Time{}, false, false, fmt.Errorf(
		"could not parse %s %q; use \"now\", an ISO date like \"2025-01-15\", or a date-time like \"2025-01-15T14:00:00\"",
		param, value)
}

// formatDuration renders an absolute duration in the requested unit.
// "auto" produces a days/hours/minutes breakdown, largest unit first.
func formatDuration(d time.Duration, unit string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "", "auto":
		return breakdown(d), nil
	case "days":
		return fmt.Sprintf("%.2f days", d.Hours()/24), nil
	case "weeks":
		return fmt.Sprintf("%.2f weeks", d.Hours()/(24*7)), nil
	case "hours":
		return fmt.Sprintf("%.2f hours", d.Hours()), nil
	case "minutes":
		return fmt.Sprintf("%.2f minutes", d.Minutes()), nil
	case "seconds":
		return fmt.Sprintf("%d seconds", int64(d.Seconds())), nil
	}
	return "", fmt.Errorf("unknown unit %q; use auto, days, weeks, hours, minutes, or seconds", unit)
}

func breakdown(d time.Duration) string {
	days := int64(d / (24 * time.Hour))
	hours := int64(d/time.Hour) % 24
	minutes := int64(d/time.Minute) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, plural(days, "day"))
	}
	if hours > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, plural(minutes, "minute"))
	}
	if len(parts) == 0 {
		return "0 minutes"
	}
	return strings.Join(parts, ", ")
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
