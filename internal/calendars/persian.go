package calendars

import (
	"fmt"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// Latin transliterations; the library's own String methods return the
// Farsi script used on the second line.
var persianMonths = [...]string{
	"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar",
	"Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand",
}

// Indexed by the Gregorian weekday (Sunday first).
var persianWeekdays = [...]string{
	"Yekshanbeh", "Doshanbeh", "Seshanbeh", "Chaharshanbeh",
	"Panjshanbeh", "Jomeh", "Shanbeh",
}

// renderPersian formats t in the Solar Hijri calendar, transliterated
// and in Farsi.
func renderPersian(t time.Time) string {
	pt := ptime.New(t)

	monthLatin := ""
	if m := int(pt.Month()); m >= 1 && m <= len(persianMonths) {
		monthLatin = persianMonths[m-1]
	}
	weekdayLatin := persianWeekdays[int(t.Weekday())]

	english := fmt.Sprintf("%s %02d %s %d", weekdayLatin, pt.Day(), monthLatin, pt.Year())
	farsi := fmt.Sprintf("%s %02d %s %d", pt.Weekday().String(), pt.Day(), pt.Month().String(), pt.Year())

	return fmt.Sprintf("--- Persian Calendar ---\nEnglish: %s\nFarsi: %s", english, farsi)
}
