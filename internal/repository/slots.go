package repository

import (
	"context"
	"time"

	"github.com/madrasa-dev/school-manager/backend/internal/domain"
)

// Slot reads denormalize class_name and teacher_name so the layout engine
// never has to resolve references itself.
const slotColumns = `
	s.id, s.class_id, s.teacher_id, s.day, s.start_time, s.end_time,
	c.name, t.name, s.created_at
`

const slotJoins = `
	FROM timetable_slots s
	JOIN classes c ON s.class_id = c.id
	JOIN teachers t ON s.teacher_id = t.id
`

func (r *Repository) scanSlots(ctx context.Context, query string, args ...any) ([]*domain.TimetableSlot, error) {
	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := make([]*domain.TimetableSlot, 0)
	for rows.Next() {
		slot := &domain.TimetableSlot{}
		dst := []any{&slot.ID, &slot.ClassID, &slot.TeacherID, &slot.Day, &slot.StartTime, &slot.EndTime, &slot.ClassName, &slot.TeacherName, &slot.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *Repository) GetAllSlots() ([]*domain.TimetableSlot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return r.scanSlots(ctx, `SELECT `+slotColumns+slotJoins+` ORDER BY s.id`)
}

func (r *Repository) GetSlotsByTeacher(teacherID int64) ([]*domain.TimetableSlot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return r.scanSlots(ctx, `SELECT `+slotColumns+slotJoins+` WHERE s.teacher_id = $1 ORDER BY s.id`, teacherID)
}

func (r *Repository) GetSlotsByClass(classID int64) ([]*domain.TimetableSlot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return r.scanSlots(ctx, `SELECT `+slotColumns+slotJoins+` WHERE s.class_id = $1 ORDER BY s.id`, classID)
}

func (r *Repository) GetSlotByID(id int64) (*domain.TimetableSlot, error) {
	query := `SELECT ` + slotColumns + slotJoins + ` WHERE s.id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	slot := &domain.TimetableSlot{}
	dst := []any{&slot.ID, &slot.ClassID, &slot.TeacherID, &slot.Day, &slot.StartTime, &slot.EndTime, &slot.ClassName, &slot.TeacherName, &slot.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return slot, nil
}

func (r *Repository) CreateSlot(slot *domain.TimetableSlot) error {
	query := `
		INSERT INTO timetable_slots (class_id, teacher_id, day, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{slot.ClassID, slot.TeacherID, slot.Day, slot.StartTime, slot.EndTime}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &slot.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteSlot(id int64) error {
	query := `
		DELETE FROM timetable_slots WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
