package domain

import (
	"fmt"
	"time"
)

// Day is a day-of-week key as stored on a timetable slot, Sunday first to
// match the week layout of the dashboard.
type Day string

const (
	DaySun Day = "sun"
	DayMon Day = "mon"
	DayTue Day = "tue"
	DayWed Day = "wed"
	DayThu Day = "thu"
	DayFri Day = "fri"
	DaySat Day = "sat"
)

// Days lists every valid day key in display order.
var Days = []Day{DaySun, DayMon, DayTue, DayWed, DayThu, DayFri, DaySat}

var dayLabelsAr = map[Day]string{
	DaySun: "الأحد",
	DayMon: "الإثنين",
	DayTue: "الثلاثاء",
	DayWed: "الأربعاء",
	DayThu: "الخميس",
	DayFri: "الجمعة",
	DaySat: "السبت",
}

// LabelAr returns the Arabic display label of the day.
func (d Day) LabelAr() string {
	return dayLabelsAr[d]
}

func (d Day) Valid() bool {
	_, ok := dayLabelsAr[d]
	return ok
}

func ParseDay(s string) (Day, error) {
	d := Day(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown day key %q", s)
	}
	return d, nil
}

// TimetableSlot is one scheduled lesson. StartTime and EndTime are wall-clock
// strings "HH:MM" or "HH:MM:SS"; EndTime is later than StartTime within the
// same day (no overnight slots).
type TimetableSlot struct {
	ID          int64     `json:"id"`
	ClassID     int64     `json:"class_id"`
	TeacherID   int64     `json:"teacher_id"`
	Day         Day       `json:"day"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	ClassName   string    `json:"class_name"`
	TeacherName string    `json:"teacher_name,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
