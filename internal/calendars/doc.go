// Package calendars renders a single instant in alternative calendar
// systems: Unix timestamp, ISO week date, Hijri, Japanese imperial,
// Persian (Solar Hijri), and Hebrew.
//
// Name lookup (Parse) is separate from rendering so callers can report
// unknown names without producing a section.
package calendars
