package calendars

import (
	"fmt"
	"time"
)

type era struct {
	name  string
	kanji string
	start time.Time
}

// Japanese imperial eras, newest first. Dates before the Meiji
// restoration fall outside the table and render without an era.
var japaneseEras = []era{
	{"Reiwa", "令和", time.Date(2019, time.May, 1, 0, 0, 0, 0, time.UTC)},
	{"Heisei", "平成", time.Date(1989, time.January, 8, 0, 0, 0, 0, time.UTC)},
	{"Showa", "昭和", time.Date(1926, time.December, 25, 0, 0, 0, 0, time.UTC)},
	{"Taisho", "大正", time.Date(1912, time.July, 30, 0, 0, 0, 0, time.UTC)},
	{"Meiji", "明治", time.Date(1868, time.January, 25, 0, 0, 0, 0, time.UTC)},
}

func eraFor(t time.Time) (era, bool) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	for _, e := range japaneseEras {
		if !day.Before(e.start) {
			return e, true
		}
	}
	return era{}, false
}

// renderJapanese formats t with its imperial era in both English and
// kanji. Era year 1 is the year the era began.
func renderJapanese(t time.Time) string {
	e, ok := eraFor(t)
	if !ok {
		return "--- Japanese Calendar ---\n(Note: date precedes the Meiji era)"
	}

	eraYear := t.Year() - e.start.Year() + 1
	english := fmt.Sprintf("%s %d, %s %02d, %02d:%02d",
		e.name, eraYear, t.Month(), t.Day(), t.Hour(), t.Minute())
	kanji := fmt.Sprintf("%s%d年%02d月%02d日 %02d時",
		e.kanji, eraYear, int(t.Month()), t.Day(), t.Hour())

	return fmt.Sprintf("--- Japanese Calendar ---\nEnglish: %s\nKanji: %s\nEra: %s (%s)",
		english, kanji, e.name, e.kanji)
}
