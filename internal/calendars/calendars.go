package calendars

import (
	"fmt"
	"strings"
	"time"
)

// Calendar identifies one supported alternative calendar rendering.
type Calendar int

const (
	Unix Calendar = iota
	IsoDate
	Hijri
	Japanese
	Persian
	Hebrew
)

var names = map[string]Calendar{
	"unix":     Unix,
	"isodate":  IsoDate,
	"hijri":    Hijri,
	"japanese": Japanese,
	"persian":  Persian,
	"hebrew":   Hebrew,
}

// Parse maps a user-supplied calendar name to its Calendar value.
// Matching is case-insensitive and ignores surrounding whitespace.
func Parse(name string) (Calendar, bool) {
	c, ok := names[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Render formats t in the calendar's multi-line section format. Every
// calendar renders the same instant it is given; conversion to a display
// timezone is the caller's job. Render is total: conversion failures
// degrade to a note inside the section rather than an error.
func (c Calendar) Render(t time.Time) string {
	switch c {
	case Unix:
		return renderUnix(t)
	case IsoDate:
		return renderIsoDate(t)
	case Hijri:
		return renderHijri(t)
	case Japanese:
		return renderJapanese(t)
	case Persian:
		return renderPersian(t)
	case Hebrew:
		return renderHebrew(t)
	}
	return ""
}

func renderUnix(t time.Time) string {
	return fmt.Sprintf("--- Unix Timestamp ---\n%d", t.Unix())
}

func renderIsoDate(t time.Time) string {
	year, week := t.ISOWeek()
	day := int(t.Weekday())
	if day == 0 {
		day = 7
	}
	return fmt.Sprintf("--- ISO Week Date ---\n%04d-W%02d-%d", year, week, day)
}
