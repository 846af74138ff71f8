package timetable

import (
	"log/slog"

	"github.com/madrasa-dev/school-manager/backend/internal/domain"
)

// FilterSlots narrows the collection by class and teacher. A zero id means no
// constraint on that dimension; both constraints must hold for a slot to
// pass. The input order is preserved.
func FilterSlots(slots []*domain.TimetableSlot, classID, teacherID int64) []*domain.TimetableSlot {
	filtered := make([]*domain.TimetableSlot, 0, len(slots))
	for _, slot := range slots {
		if classID != 0 && slot.ClassID != classID {
			continue
		}
		if teacherID != 0 && slot.TeacherID != teacherID {
			continue
		}
		filtered = append(filtered, slot)
	}
	return filtered
}

// GroupByDay buckets slots under the declared day keys. Every key gets a
// bucket even when empty, so callers can iterate a day without an existence
// check. Bucket order follows the input collection, not chronological order;
// the layout places blocks by absolute offset so this is safe. Slots whose
// day matches no declared key are dropped and counted, and each one is logged
// as a data-integrity warning.
func GroupByDay(slots []*domain.TimetableSlot, dayKeys []domain.Day) (buckets map[domain.Day][]*domain.TimetableSlot, dropped int) {
	buckets = make(map[domain.Day][]*domain.TimetableSlot, len(dayKeys))
	for _, key := range dayKeys {
		buckets[key] = []*domain.TimetableSlot{}
	}

	for _, slot := range slots {
		if _, ok := buckets[slot.Day]; !ok {
			slog.Warn("slot references an undeclared day key", "slot_id", slot.ID, "day", slot.Day)
			dropped++
			continue
		}
		buckets[slot.Day] = append(buckets[slot.Day], slot)
	}

	return buckets, dropped
}
