package timetable

import (
	"fmt"
	"testing"
	"time"
)

func TestCurrentWeekDates(t *testing.T) {
	refs := []time.Time{
		time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),    // a Sunday
		time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC), // a Wednesday, mid-day
		time.Date(2025, 3, 15, 23, 59, 59, 0, time.UTC), // a Saturday, end of day
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),    // year boundary week
		time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC),  // leap day
	}

	for _, ref := range refs {
		t.Run(ref.Format("2006-01-02"), func(t *testing.T) {
			dates := CurrentWeekDates(ref)

			if len(dates) != 7 {
				t.Fatalf("got %d dates, want 7", len(dates))
			}
			if dates[0].Weekday() != time.Sunday {
				t.Errorf("dates[0] falls on %v, want Sunday", dates[0].Weekday())
			}
			if dates[0].After(ref) {
				t.Errorf("dates[0] = %v is after the reference %v", dates[0], ref)
			}
			for i, d := range dates {
				if h, m, s := d.Clock(); h != 0 || m != 0 || s != 0 {
					t.Errorf("dates[%d] time-of-day = %02d:%02d:%02d, want midnight", i, h, m, s)
				}
				if i > 0 {
					if got := dates[i].Sub(dates[i-1]); got != 24*time.Hour {
						t.Errorf("dates[%d]-dates[%d] = %v, want 24h", i, i-1, got)
					}
				}
			}
		})
	}
}

func TestShiftWeek(t *testing.T) {
	today := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	dates := CurrentWeekDates(today)

	zero := ShiftWeek(dates, 0)
	for i := range dates {
		if !zero[i].Equal(dates[i]) {
			t.Errorf("ShiftWeek(dates, 0)[%d] = %v, want %v", i, zero[i], dates[i])
		}
	}

	for _, offset := range []int{1, -1, 52, -260} {
		t.Run(fmt.Sprintf("offset %d", offset), func(t *testing.T) {
			shifted := ShiftWeek(dates, offset)
			for i := range dates {
				want := dates[i].AddDate(0, 0, offset*7)
				if !shifted[i].Equal(want) {
					t.Errorf("ShiftWeek(dates, %d)[%d] = %v, want %v", offset, i, shifted[i], want)
				}
			}
		})
	}
}

func TestFormatRange(t *testing.T) {
	// week fully inside March 2025: 9..15
	dates := CurrentWeekDates(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC))
	want := fmt.Sprintf("9 - 15 %s, 2025", arabicLocale.MonthWide(time.March))
	if got := FormatRange(dates); got != want {
		t.Errorf("FormatRange = %q, want %q", got, want)
	}
}

func TestFormatRangeMonthBoundary(t *testing.T) {
	// week of 2025-03-30 .. 2025-04-05 straddles a month boundary; the label
	// keeps the first date's month, matching the dashboard's historical output
	dates := CurrentWeekDates(time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC))
	if dates[0].Month() != time.March || dates[6].Month() != time.April {
		t.Fatalf("unexpected window %v .. %v", dates[0], dates[6])
	}
	want := fmt.Sprintf("30 - 5 %s, 2025", arabicLocale.MonthWide(time.March))
	if got := FormatRange(dates); got != want {
		t.Errorf("FormatRange = %q, want %q", got, want)
	}
}

func TestFormatRangeEmpty(t *testing.T) {
	if got := FormatRange(nil); got != "" {
		t.Errorf("FormatRange(nil) = %q, want empty", got)
	}
}
