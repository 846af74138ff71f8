package repository

import (
	"context"
	"strings"
	"time"

	"github.com/madrasa-dev/school-manager/backend/internal/domain"
)

// Subjects are stored as a comma-separated column, mirroring the REST shape
// the dashboard exchanges.
func joinSubjects(subjects []string) string {
	return strings.Join(subjects, ",")
}

func splitSubjects(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func (r *Repository) GetAllTeachers() ([]*domain.Teacher, error) {
	query := `
		SELECT id, institution_id, name, email, phone, subjects, created_at, version
		FROM teachers ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teachers := make([]*domain.Teacher, 0)
	for rows.Next() {
		teacher := &domain.Teacher{}
		var subjects string
		dst := []any{&teacher.ID, &teacher.InstitutionID, &teacher.Name, &teacher.Email, &teacher.Phone, &subjects, &teacher.CreatedAt, &teacher.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		teacher.Subjects = splitSubjects(subjects)
		teachers = append(teachers, teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teachers, nil
}

func (r *Repository) GetTeacherByID(id int64) (*domain.Teacher, error) {
	query := `
		SELECT institution_id, name, email, phone, subjects, created_at, version
		FROM teachers WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	teacher := &domain.Teacher{
		ID: id,
	}

	var subjects string
	dst := []any{&teacher.InstitutionID, &teacher.Name, &teacher.Email, &teacher.Phone, &subjects, &teacher.CreatedAt, &teacher.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	teacher.Subjects = splitSubjects(subjects)

	return teacher, nil
}

func (r *Repository) CreateTeacher(teacher *domain.Teacher) error {
	query := `
		INSERT INTO teachers (institution_id, name, email, phone, subjects)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{teacher.InstitutionID, teacher.Name, teacher.Email, teacher.Phone, joinSubjects(teacher.Subjects)}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&teacher.ID, &teacher.CreatedAt, &teacher.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateTeacher(teacher *domain.Teacher) error {
	query := `
		UPDATE teachers
		SET
			name = $1,
			email = $2,
			phone = $3,
			subjects = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{teacher.Name, teacher.Email, teacher.Phone, joinSubjects(teacher.Subjects), teacher.ID, teacher.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&teacher.CreatedAt, &teacher.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteTeacher(id int64) error {
	query := `
		DELETE FROM teachers WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
