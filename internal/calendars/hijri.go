package calendars

import (
	"fmt"
	"time"

	"github.com/hablullah/go-hijri"
)

var hijriMonths = [...]string{
	"Muharram", "Safar", "Rabi al-Awwal", "Rabi al-Thani",
	"Jumada al-Awwal", "Jumada al-Thani", "Rajab", "Shaban",
	"Ramadan", "Shawwal", "Dhu al-Qadah", "Dhu al-Hijjah",
}

// renderHijri formats t in the Umm al-Qura variant of the Islamic
// calendar.
func renderHijri(t time.Time) string {
	d, err := hijri.CreateUmmAlQuraDate(t)
	if err != nil {
		return fmt.Sprintf("--- Hijri Calendar ---\n(Note: conversion unavailable for this date: %v)", err)
	}

	month := ""
	if d.Month >= 1 && int(d.Month) <= len(hijriMonths) {
		month = hijriMonths[d.Month-1]
	}

	return fmt.Sprintf("--- Hijri Calendar ---\nDate: %04d-%02d-%02d AH\nMonth: %s\nDay: %s",
		d.Year, d.Month, d.Day, month, t.Weekday())
}
