package repository

import (
	"context"
	"time"

	"github.com/madrasa-dev/school-manager/backend/internal/domain"
)

func (r *Repository) GetGradesByStudent(studentID int64) ([]*domain.Grade, error) {
	query := `
		SELECT id, student_id, class_id, subject, score, max_score, term, created_at, version
		FROM grades WHERE student_id = $1 ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return r.scanGrades(ctx, query, studentID)
}

func (r *Repository) GetGradesByClass(classID int64) ([]*domain.Grade, error) {
	query := `
		SELECT id, student_id, class_id, subject, score, max_score, term, created_at, version
		FROM grades WHERE class_id = $1 ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	return r.scanGrades(ctx, query, classID)
}

func (r *Repository) scanGrades(ctx context.Context, query string, args ...any) ([]*domain.Grade, error) {
	rows, err := r.dbpool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grades := make([]*domain.Grade, 0)
	for rows.Next() {
		grade := &domain.Grade{}
		dst := []any{&grade.ID, &grade.StudentID, &grade.ClassID, &grade.Subject, &grade.Score, &grade.MaxScore, &grade.Term, &grade.CreatedAt, &grade.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		grades = append(grades, grade)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}

func (r *Repository) GetGradeByID(id int64) (*domain.Grade, error) {
	query := `
		SELECT student_id, class_id, subject, score, max_score, term, created_at, version
		FROM grades WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	grade := &domain.Grade{
		ID: id,
	}

	dst := []any{&grade.StudentID, &grade.ClassID, &grade.Subject, &grade.Score, &grade.MaxScore, &grade.Term, &grade.CreatedAt, &grade.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return grade, nil
}

func (r *Repository) CreateGrade(grade *domain.Grade) error {
	query := `
		INSERT INTO grades (student_id, class_id, subject, score, max_score, term)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{grade.StudentID, grade.ClassID, grade.Subject, grade.Score, grade.MaxScore, grade.Term}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&grade.ID, &grade.CreatedAt, &grade.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateGrade(grade *domain.Grade) error {
	query := `
		UPDATE grades
		SET
			subject = $1,
			score = $2,
			max_score = $3,
			term = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{grade.Subject, grade.Score, grade.MaxScore, grade.Term, grade.ID, grade.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&grade.CreatedAt, &grade.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteGrade(id int64) error {
	query := `
		DELETE FROM grades WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
