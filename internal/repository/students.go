package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/madrasa-dev/school-manager/backend/internal/domain"
)

func (r *Repository) scanStudents(ctx context.Context, query string, args ...any) ([]*domain.Student, error) {
	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]*domain.Student, 0)
	for rows.Next() {
		student := &domain.Student{}
		var classID sql.NullInt64
		dst := []any{&student.ID, &student.Name, &student.Email, &student.Phone, &student.Grade, &classID, &student.CreatedAt, &student.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		student.ClassID = scanNullID(classID)
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

func (r *Repository) GetAllStudents() ([]*domain.Student, error) {
	query := `
		SELECT id, name, email, phone, grade, class_id, created_at, version
		FROM students ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return r.scanStudents(ctx, query)
}

func (r *Repository) GetStudentByID(id int64) (*domain.Student, error) {
	query := `
		SELECT name, email, phone, grade, class_id, created_at, version
		FROM students WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	student := &domain.Student{
		ID: id,
	}

	var classID sql.NullInt64
	dst := []any{&student.Name, &student.Email, &student.Phone, &student.Grade, &classID, &student.CreatedAt, &student.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	student.ClassID = scanNullID(classID)

	return student, nil
}

func (r *Repository) CreateStudent(student *domain.Student) error {
	query := `
		INSERT INTO students (name, email, phone, grade, class_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{student.Name, student.Email, student.Phone, student.Grade, student.ClassID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&student.ID, &student.CreatedAt, &student.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateStudent(student *domain.Student) error {
	query := `
		UPDATE students
		SET
			name = $1,
			email = $2,
			phone = $3,
			grade = $4,
			class_id = $5,
			version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{student.Name, student.Email, student.Phone, student.Grade, student.ClassID, student.ID, student.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&student.CreatedAt, &student.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteStudent(id int64) error {
	query := `
		DELETE FROM students WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
