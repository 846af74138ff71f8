package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/madrasa-dev/school-manager/backend/internal/domain"
)

func (r *Repository) GetAllCourses() ([]*domain.Course, error) {
	query := `
		SELECT id, name, description, teacher_id, price, created_at, version
		FROM courses ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]*domain.Course, 0)
	for rows.Next() {
		course := &domain.Course{}
		var teacherID sql.NullInt64
		dst := []any{&course.ID, &course.Name, &course.Description, &teacherID, &course.Price, &course.CreatedAt, &course.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		course.TeacherID = scanNullID(teacherID)
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

func (r *Repository) CreateCourse(course *domain.Course) error {
	query := `
		INSERT INTO courses (name, description, teacher_id, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{course.Name, course.Description, course.TeacherID, course.Price}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&course.ID, &course.CreatedAt, &course.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteCourse(id int64) error {
	query := `
		DELETE FROM courses WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllSubscriptions() ([]*domain.Subscription, error) {
	query := `
		SELECT id, student_id, course_id, status, start_date, end_date, created_at, version
		FROM subscriptions ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := make([]*domain.Subscription, 0)
	for rows.Next() {
		sub := &domain.Subscription{}
		dst := []any{&sub.ID, &sub.StudentID, &sub.CourseID, &sub.Status, &sub.StartDate, &sub.EndDate, &sub.CreatedAt, &sub.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subs, nil
}

func (r *Repository) CreateSubscription(sub *domain.Subscription) error {
	query := `
		INSERT INTO subscriptions (student_id, course_id, status, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{sub.StudentID, sub.CourseID, sub.Status, sub.StartDate, sub.EndDate}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&sub.ID, &sub.CreatedAt, &sub.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateSubscriptionStatus(id int64, status domain.SubscriptionStatus) error {
	query := `
		UPDATE subscriptions SET status = $1, version = version + 1 WHERE id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	res, err := r.dbpool.ExecContext(ctx, query, status, id)
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
