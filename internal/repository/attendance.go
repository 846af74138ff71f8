package repository

import (
	"context"
	"time"

	"github.com/madrasa-dev/school-manager/backend/internal/domain"
)

func (r *Repository) GetAttendanceByClassAndDate(classID int64, date time.Time) ([]*domain.AttendanceRecord, error) {
	query := `
		SELECT id, student_id, class_id, date, status, note, created_at, version
		FROM attendance_records
		WHERE class_id = $1 AND date = $2
		ORDER BY student_id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, classID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.AttendanceRecord, 0)
	for rows.Next() {
		rec := &domain.AttendanceRecord{}
		dst := []any{&rec.ID, &rec.StudentID, &rec.ClassID, &rec.Date, &rec.Status, &rec.Note, &rec.CreatedAt, &rec.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// UpsertAttendance records one student's status for the day; marking the same
// student twice overwrites the earlier status.
func (r *Repository) UpsertAttendance(rec *domain.AttendanceRecord) error {
	query := `
		INSERT INTO attendance_records (student_id, class_id, date, status, note)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (student_id, date) DO UPDATE
		SET status = EXCLUDED.status, note = EXCLUDED.note, version = attendance_records.version + 1
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{rec.StudentID, rec.ClassID, rec.Date, rec.Status, rec.Note}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&rec.ID, &rec.CreatedAt, &rec.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteAttendance(id int64) error {
	query := `
		DELETE FROM attendance_records WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
