package domain

import "time"

type Grade struct {
	ID        int64     `json:"id"`
	StudentID int64     `json:"studentID"`
	ClassID   int64     `json:"classID"`
	Subject   string    `json:"subject"`
	Score     float64   `json:"score"`
	MaxScore  float64   `json:"maxScore"`
	Term      string    `json:"term"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}
