package domain

import "time"

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	}
	return false
}

type AttendanceRecord struct {
	ID        int64            `json:"id"`
	StudentID int64            `json:"studentID"`
	ClassID   int64            `json:"classID"`
	Date      time.Time        `json:"date"`
	Status    AttendanceStatus `json:"status"`
	Note      string           `json:"note"`
	CreatedAt time.Time        `json:"createdAt"`
	Version   int32            `json:"-"`
}
