package calendars

import (
	"fmt"
	"strings"
	"time"

	"github.com/hebcal/hdate"
	"github.com/hebcal/hebcal-go/event"
	"github.com/hebcal/hebcal-go/hebcal"
)

// renderHebrew formats t in the Hebrew calendar, with any holiday falling
// on that civil date appended.
func renderHebrew(t time.Time) string {
	hd := hdate.FromGregorian(t.Year(), t.Month(), t.Day())

	var b strings.Builder
	fmt.Fprintf(&b, "--- Hebrew Calendar ---\nEnglish: %s\nHebrew: %s", hd.String(), event.NewHebrewDateEvent(hd).Render("he"))

	for _, ev := range hebcal.GetHolidaysOnDate(hd, false) {
		fmt.Fprintf(&b, "\nHoliday: %s (%s)", ev.Render("en"), ev.Render("he"))
	}

	return b.String()
}
