package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronos-mcp/chronos/internal/geocode"
	"github.com/chronos-mcp/chronos/internal/location"
	"github.com/chronos-mcp/chronos/internal/ntptime"
	"github.com/chronos-mcp/chronos/internal/tzindex"
)

// fixedInstant is a Wednesday, 14:00 UTC.
var fixedInstant = time.Date(2025, time.January, 15, 14, 0, 0, 0, time.UTC)

type fakeClock struct {
	now        time.Time
	fromNTP    bool
	lastServer string
}

func (f *fakeClock) Now(_ context.Context, server string) ntptime.Result {
	f.lastServer = server
	return ntptime.Result{Time: f.now, FromNTP: f.fromNTP}
}

type stubGeocoder struct {
	place *geocode.Place
	err   error
}

func (s *stubGeocoder) Search(context.Context, string) (*geocode.Place, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.place, nil
}

func newTestBuilder(clock *fakeClock, g location.Geocoder) *Builder {
	if g == nil {
		g = &stubGeocoder{err: geocode.ErrNotFound}
	}
	resolver := location.NewResolver(g, tzindex.Shared(), nil)
	return NewBuilder(clock, resolver, "pool.ntp.org", nil)
}

func TestCurrentTimeNoLocation(t *testing.T) {
	b := newTestBuilder(&fakeClock{now: fixedInstant, fromNTP: true}, nil)

	got := b.CurrentTime(context.Background(), CurrentTimeRequest{})

	assert.Equal(t, "UTC Time: 2025-01-15 14:00:00\nDay: Wednesday", got)
	assert.NotContains(t, got, "Location:")
	assert.NotContains(t, got, "UTC Reference:")
}

func TestCurrentTimeNamedZone(t *testing.T) {
	b := newTestBuilder(&fakeClock{now: fixedInstant, fromNTP: true}, nil)

	got := b.CurrentTime(context.Background(), CurrentTimeRequest{Timezone: "Europe/Warsaw"})

	assert.Contains(t, got, "Local Time: 2025-01-15 15:00:00")
	assert.Contains(t, got, "Day: Wednesday")
	assert.Contains(t, got, "Location: Europe/Warsaw")
	assert.Contains(t, got, "Timezone: Europe/Warsaw (CET)")
	assert.Contains(t, got, "UTC Offset: +01:00")
	assert.Contains(t, got, "DST Active: No")
	assert.Contains(t, got, "UTC Reference: 2025-01-15 14:00:00")
	assert.NotContains(t, got, "UTC Time:")
}

func TestCurrentTimeDSTActive(t *testing.T) {
	july := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)
	b := newTestBuilder(&fakeClock{now: july, fromNTP: true}, nil)

	got := b.CurrentTime(context.Background(), CurrentTimeRequest{Timezone: "Europe/Warsaw"})

	assert.Contains(t, got, "DST Active: Yes")
	assert.Contains(t, got, "UTC Offset: +02:00")
}

func TestCurrentTimeFixedOffset(t *testing.T) {
	b := newTestBuilder(&fakeClock{now: fixedInstant, fromNTP: true}, nil)

	got := b.CurrentTime(context.Background(), CurrentTimeRequest{Timezone: "+05:30"})

	assert.Contains(t, got, "Local Time: 2025-01-15 19:30:00")
	assert.Contains(t, got, "Location: UTC+05:30")
	assert.Contains(t, got, "Timezone: UTC+05:30")
	assert.Contains(t, got, "UTC Offset: +05:30")
	assert.NotContains(t, got, "DST Active:")
}

func TestCurrentTimeResolvedCity(t *testing.T) {
	g := &stubGeocoder{place: &geocode.Place{
		Lat:         52.2297,
		Lon:         21.0122,
		DisplayName: "Warsaw, Masovian Voivodeship, Poland",
	}}
	b := newTestBuilder(&fakeClock{now: fixedInstant, fromNTP: true}, g)

	got := b.CurrentTime(context.Background(), CurrentTimeRequest{City: "Warsaw"})

	assert.Contains(t, got, "Location: Warsaw, Poland")
	assert.Contains(t, got, "Timezone: Europe/Warsaw (CET)")
}

func TestCurrentTimeUnresolvedCity(t *testing.T) {
	b := newTestBuilder(&fakeClock{now: fixedInstant, fromNTP: true}, nil)

	got := b.CurrentTime(context.Background(), CurrentTimeRequest{City: "Gotham"})

	assert.Contains(t, got, "Warning: ")
	assert.Contains(t, got, "Gotham")
	assert.Contains(t, got, "Tip: ")
	assert.Contains(t, got, "UTC Time: 2025-01-15 14:00:00")
	assert.NotContains(t, got, "UTC Reference:")

	// The warning block precedes the fallback UTC block.
	assert.Less(t, strings.Index(got, "Warning:"), strings.Index(got, "UTC Time:"))
}

func TestCurrentTimeCalendarOrdering(t *testing.T) {
	b := newTestBuilder(&fakeClock{now: fixedInstant, fromNTP: true}, nil)

	got := b.CurrentTime(context.Background(), CurrentTimeRequest{Calendars: "unix,invalid,hebrew"})

	unixIdx := strings.Index(got, "--- Unix Timestamp ---")
	hebrewIdx := strings.Index(got, "--- Hebrew Calendar ---")
	noteIdx := strings.Index(got, "(Note: Unknown calendar format ignored: invalid)")
	dateIdx := strings.Index(got, "Date: 2025-01-15 (Gregorian)")

	require.NotEqual(t, -1, unixIdx)
	require.NotEqual(t, -1, hebrewIdx)
	require.NotEqual(t, -1, noteIdx)
	require.NotEqual(t, -1, dateIdx)

	assert.Less(t, dateIdx, unixIdx)
	assert.Less(t, unixIdx, hebrewIdx)
	assert.Less(t, hebrewIdx, noteIdx)
}

func TestCurrentTimeCalendarRepeats(t *testing.T) {
	b := newTestBuilder(&fakeClock{now: fixedInstant, fromNTP: true}, nil)

	got := b.CurrentTime(context.Background(), CurrentTimeRequest{Calendars: "unix, unix, nope, nope"})

	assert.Equal(t, 2, strings.Count(got, "--- Unix Timestamp ---"))
	assert.Equal(t, 2, strings.Count(got, "ignored: nope"))
}

func TestCurrentTimeCalendarInResolvedZone(t *testing.T) {
	// 23:30 UTC on Jan 14 is already Jan 15 in Tokyo; calendar sections
	// must follow the display instant.
	lateEvening := time.Date(2025, time.January, 14, 23, 30, 0, 0, time.UTC)
	b := newTestBuilder(&fakeClock{now: lateEvening, fromNTP: true}, nil)

	got := b.CurrentTime(context.Background(), CurrentTimeRequest{
		Calendars: "isodate",
		Timezone:  "Asia/Tokyo",
	})

	assert.Contains(t, got, "Date: 2025-01-15 (Gregorian)")
	assert.Contains(t, got, "2025-W03-3")
}

func TestCurrentTimeNTPFallbackNoticeLast(t *testing.T) {
	b := newTestBuilder(&fakeClock{now: fixedInstant, fromNTP: false}, nil)

	tests := []CurrentTimeRequest{
		{},
		{Timezone: "Europe/Warsaw"},
		{City: "Gotham"},
		{Calendars: "unix,invalid"},
	}

	for _, req := range tests {
		got := b.CurrentTime(context.Background(), req)
		lines := strings.Split(got, "\n")
		assert.Equal(t, "(Note: NTP unavailable, using local server time)", lines[len(lines)-1])
	}
}

func TestUTCTime(t *testing.T) {
	clock := &fakeClock{now: fixedInstant, fromNTP: true}
	b := newTestBuilder(clock, nil)

	got := b.UTCTime(context.Background(), "time.cloudflare.com")

	assert.Equal(t, "Current UTC Time from time.cloudflare.com: 2025-01-15 14:00:00\nDay: Wednesday", got)
	assert.Equal(t, "time.cloudflare.com", clock.lastServer)
}

func TestUTCTimeDefaultServerAndFallback(t *testing.T) {
	clock := &fakeClock{now: fixedInstant, fromNTP: false}
	b := newTestBuilder(clock, nil)

	got := b.UTCTime(context.Background(), "")

	assert.Contains(t, got, "Current UTC Time from pool.ntp.org: 2025-01-15 14:00:00")
	assert.True(t, strings.HasSuffix(got, "(Note: NTP unavailable, using local server time)"))
	assert.Equal(t, "pool.ntp.org", clock.lastServer)
}

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "+00:00"},
		{5*3600 + 30*60, "+05:30"},
		{-5 * 3600, "-05:00"},
		{-9*3600 - 30*60, "-09:30"},
	}

	for _, tt := range tests {
		ts := fixedInstant.In(time.FixedZone("test", tt.seconds))
		assert.Equal(t, tt.want, formatOffset(ts))
	}
}
