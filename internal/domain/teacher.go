package domain

import "time"

type Teacher struct {
	ID            int64     `json:"id"`
	InstitutionID int64     `json:"institutionID"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Subjects      []string  `json:"subjects"`
	CreatedAt     time.Time `json:"createdAt"`
	Version       int32     `json:"-"`
}
