package domain

import "time"

type Student struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Grade     string    `json:"grade"`
	ClassID   *int64    `json:"classID"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}
