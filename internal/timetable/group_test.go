package timetable

import (
	"testing"

	"github.com/madrasa-dev/school-manager/backend/internal/domain"
)

func slot(id, classID, teacherID int64, day domain.Day, start, end, className string) *domain.TimetableSlot {
	return &domain.TimetableSlot{
		ID:        id,
		ClassID:   classID,
		TeacherID: teacherID,
		Day:       day,
		StartTime: start,
		EndTime:   end,
		ClassName: className,
	}
}

func TestFilterSlots(t *testing.T) {
	slots := []*domain.TimetableSlot{
		slot(1, 10, 100, domain.DaySun, "08:00", "09:00", "الصف الأول"),
		slot(2, 10, 200, domain.DayMon, "09:00", "10:00", "الصف الأول"),
		slot(3, 20, 100, domain.DayMon, "10:00", "11:00", "الصف الثاني"),
	}

	tests := []struct {
		name      string
		classID   int64
		teacherID int64
		wantIDs   []int64
	}{
		{name: "no constraints", wantIDs: []int64{1, 2, 3}},
		{name: "by class", classID: 10, wantIDs: []int64{1, 2}},
		{name: "by teacher", teacherID: 100, wantIDs: []int64{1, 3}},
		{name: "conjunction", classID: 10, teacherID: 100, wantIDs: []int64{1}},
		{name: "no match", teacherID: 999, wantIDs: []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterSlots(slots, tt.classID, tt.teacherID)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d slots, want %d", len(got), len(tt.wantIDs))
			}
			for i, s := range got {
				if s.ID != tt.wantIDs[i] {
					t.Errorf("slot[%d].ID = %d, want %d", i, s.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestGroupByDay(t *testing.T) {
	slots := []*domain.TimetableSlot{
		slot(1, 10, 100, domain.DaySun, "08:00", "09:00", "الصف الأول"),
		slot(2, 10, 100, domain.DayMon, "09:00", "10:00", "الصف الأول"),
		slot(3, 20, 200, domain.DaySun, "10:00", "11:00", "الصف الثاني"),
		slot(4, 20, 200, "holiday", "10:00", "11:00", "الصف الثاني"),
	}

	buckets, dropped := GroupByDay(slots, domain.Days)

	if len(buckets) != len(domain.Days) {
		t.Fatalf("got %d buckets, want %d", len(buckets), len(domain.Days))
	}
	for _, day := range domain.Days {
		if buckets[day] == nil {
			t.Errorf("bucket %q is nil, want an initialized empty bucket", day)
		}
	}

	total := 0
	for _, bucket := range buckets {
		total += len(bucket)
	}
	if total != 3 {
		t.Errorf("bucketed slot total = %d, want 3", total)
	}
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}

	// insertion order preserved within a day
	sun := buckets[domain.DaySun]
	if len(sun) != 2 || sun[0].ID != 1 || sun[1].ID != 3 {
		t.Errorf("sunday bucket = %v, want slots 1 then 3", sun)
	}
}
