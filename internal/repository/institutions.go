package repository

import (
	"context"
	"time"

	"github.com/madrasa-dev/school-manager/backend/internal/domain"
)

func (r *Repository) GetAllInstitutions() ([]*domain.Institution, error) {
	query := `
		SELECT id, name, email, phone, address, created_at, version
		FROM institutions ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	institutions := make([]*domain.Institution, 0)
	for rows.Next() {
		inst := &domain.Institution{}
		dst := []any{&inst.ID, &inst.Name, &inst.Email, &inst.Phone, &inst.Address, &inst.CreatedAt, &inst.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		institutions = append(institutions, inst)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return institutions, nil
}

func (r *Repository) GetInstitutionByID(id int64) (*domain.Institution, error) {
	query := `
		SELECT name, email, phone, address, created_at, version
		FROM institutions WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	inst := &domain.Institution{
		ID: id,
	}

	dst := []any{&inst.Name, &inst.Email, &inst.Phone, &inst.Address, &inst.CreatedAt, &inst.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return inst, nil
}

func (r *Repository) CreateInstitution(inst *domain.Institution) error {
	query := `
		INSERT INTO institutions (name, email, phone, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{inst.Name, inst.Email, inst.Phone, inst.Address}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&inst.ID, &inst.CreatedAt, &inst.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateInstitution(inst *domain.Institution) error {
	query := `
		UPDATE institutions
		SET
			name = $1,
			email = $2,
			phone = $3,
			address = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{inst.Name, inst.Email, inst.Phone, inst.Address, inst.ID, inst.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&inst.CreatedAt, &inst.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteInstitution(id int64) error {
	query := `
		DELETE FROM institutions WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
