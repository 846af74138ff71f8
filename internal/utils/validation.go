package utils

import (
	"fmt"

	"github.com/madrasa-dev/school-manager/backend/internal/domain"
	"github.com/madrasa-dev/school-manager/backend/internal/timetable"
)

// ValidateSlotTime checks a slot's day key and time strings at the boundary,
// so records coming off the wire are fully coerced before the layout engine
// ever sees them. End must be strictly later than start within the same day;
// overnight slots are not supported.
func ValidateSlotTime(slot *domain.TimetableSlot) error {
	if !slot.Day.Valid() {
		return fmt.Errorf("unknown day key %q", slot.Day)
	}

	start, err := timetable.TimeToOffset(slot.StartTime, 0)
	if err != nil {
		return fmt.Errorf("invalid start time: %w", err)
	}
	end, err := timetable.TimeToOffset(slot.EndTime, 0)
	if err != nil {
		return fmt.Errorf("invalid end time: %w", err)
	}

	if end <= start {
		return fmt.Errorf("end time %q is not later than start time %q", slot.EndTime, slot.StartTime)
	}

	return nil
}
