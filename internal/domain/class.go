package domain

import "time"

type Class struct {
	ID            int64     `json:"id"`
	InstitutionID int64     `json:"institutionID"`
	Name          string    `json:"name"`
	TeacherID     *int64    `json:"teacherID"` // homeroom teacher, optional
	TeacherName   string    `json:"teacherName,omitempty"`
	StudentCount  int       `json:"studentCount"`
	CreatedAt     time.Time `json:"createdAt"`
	Version       int32     `json:"-"`
}
