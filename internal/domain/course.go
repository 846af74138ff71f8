package domain

import "time"

type Course struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TeacherID   *int64    `json:"teacherID"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
	Version     int32     `json:"-"`
}

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

type Subscription struct {
	ID        int64              `json:"id"`
	StudentID int64              `json:"studentID"`
	CourseID  int64              `json:"courseID"`
	Status    SubscriptionStatus `json:"status"`
	StartDate time.Time          `json:"startDate"`
	EndDate   time.Time          `json:"endDate"`
	CreatedAt time.Time          `json:"createdAt"`
	Version   int32              `json:"-"`
}
