package timetable

import (
	"fmt"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/ar"
)

// arabicLocale supplies the localized month names for the week range label.
var arabicLocale locales.Translator = ar.New()

// CurrentWeekDates returns the seven calendar dates of the week containing
// ref, Sunday first, each at midnight in ref's location.
func CurrentWeekDates(ref time.Time) []time.Time {
	sunday := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	sunday = sunday.AddDate(0, 0, -int(ref.Weekday()))

	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = sunday.AddDate(0, 0, i)
	}
	return dates
}

// ShiftWeek moves every date by offsetWeeks whole weeks. The offset may be
// negative and has no bound on magnitude.
func ShiftWeek(dates []time.Time, offsetWeeks int) []time.Time {
	shifted := make([]time.Time, len(dates))
	for i, d := range dates {
		shifted[i] = d.AddDate(0, 0, offsetWeeks*7)
	}
	return shifted
}

// FormatRange renders a week window as "{first day} - {last day} {month},
// {year}". The month and year are taken from the first date even when the
// window straddles a month or year boundary, reproducing the label the
// dashboard has always shown.
func FormatRange(dates []time.Time) string {
	if len(dates) == 0 {
		return ""
	}

	first := dates[0]
	last := dates[len(dates)-1]

	return fmt.Sprintf("%d - %d %s, %d", first.Day(), last.Day(), arabicLocale.MonthWide(first.Month()), first.Year())
}
