package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/madrasa-dev/school-manager/backend/internal/domain"
)

func (r *Repository) GetAllClasses() ([]*domain.Class, error) {
	query := `
		SELECT
			c.id, c.institution_id, c.name, c.teacher_id,
			COALESCE(t.name, ''),
			(SELECT COUNT(*) FROM students s WHERE s.class_id = c.id),
			c.created_at, c.version
		FROM classes c
		LEFT JOIN teachers t ON c.teacher_id = t.id
		ORDER BY c.id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := make([]*domain.Class, 0)
	for rows.Next() {
		class := &domain.Class{}
		var teacherID sql.NullInt64
		dst := []any{&class.ID, &class.InstitutionID, &class.Name, &teacherID, &class.TeacherName, &class.StudentCount, &class.CreatedAt, &class.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		class.TeacherID = scanNullID(teacherID)
		classes = append(classes, class)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *Repository) GetClassByID(id int64) (*domain.Class, error) {
	query := `
		SELECT
			c.institution_id, c.name, c.teacher_id,
			COALESCE(t.name, ''),
			(SELECT COUNT(*) FROM students s WHERE s.class_id = c.id),
			c.created_at, c.version
		FROM classes c
		LEFT JOIN teachers t ON c.teacher_id = t.id
		WHERE c.id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	class := &domain.Class{
		ID: id,
	}

	var teacherID sql.NullInt64
	dst := []any{&class.InstitutionID, &class.Name, &teacherID, &class.TeacherName, &class.StudentCount, &class.CreatedAt, &class.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	class.TeacherID = scanNullID(teacherID)

	return class, nil
}

func (r *Repository) CreateClass(class *domain.Class) error {
	query := `
		INSERT INTO classes (institution_id, name, teacher_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{class.InstitutionID, class.Name, class.TeacherID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&class.ID, &class.CreatedAt, &class.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateClass(class *domain.Class) error {
	query := `
		UPDATE classes
		SET
			name = $1,
			teacher_id = $2,
			version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{class.Name, class.TeacherID, class.ID, class.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&class.CreatedAt, &class.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteClass(id int64) error {
	query := `
		DELETE FROM classes WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetClassStudents(classID int64) ([]*domain.Student, error) {
	query := `
		SELECT id, name, email, phone, grade, class_id, created_at, version
		FROM students WHERE class_id = $1 ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return r.scanStudents(ctx, query, classID)
}

func (r *Repository) SetStudentClass(studentID int64, classID *int64) error {
	query := `
		UPDATE students SET class_id = $1, version = version + 1 WHERE id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	res, err := r.dbpool.ExecContext(ctx, query, classID, studentID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
