package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/roster-service/internal/domain"
)

// RoleRepository defines persistence access for roles.
type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) error
	GetByName(ctx context.Context, name string) (*domain.Role, error)
	GetByID(ctx context.Context, id int64) (*domain.Role, error)
	List(ctx context.Context) ([]domain.Role, error)
	UpdateName(ctx context.Context, id int64, name string) error
	DeleteByName(ctx context.Context, name string) error
}

type roleRepository struct {
	db DB
}

// NewRoleRepository returns a Postgres-backed implementation.
func NewRoleRepository(db DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) Create(ctx context.Context, role *domain.Role) error {
	const query = `
        INSERT INTO roles (name, created_at, updated_at)
        VALUES ($1, now(), now())
        RETURNING role_id, created_at, updated_at`
	return r.db.QueryRow(ctx, query, role.Name).
		Scan(&role.ID, &role.CreatedAt, &role.UpdatedAt)
}

func (r *roleRepository) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	const query = `
        SELECT role_id, name, created_at, updated_at
        FROM roles WHERE name=$1`
	var role domain.Role
	if err := r.db.QueryRow(ctx, query, name).Scan(
		&role.ID,
		&role.Name,
		&role.CreatedAt,
		&role.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	const query = `
        SELECT role_id, name, created_at, updated_at
        FROM roles WHERE role_id=$1`
	var role domain.Role
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&role.ID,
		&role.Name,
		&role.CreatedAt,
		&role.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) List(ctx context.Context) ([]domain.Role, error) {
	const query = `
        SELECT role_id, name, created_at, updated_at
        FROM roles ORDER BY role_id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, role)
	}
	return result, rows.Err()
}

func (r *roleRepository) UpdateName(ctx context.Context, id int64, name string) error {
	const query = `
        UPDATE roles SET name=$1, updated_at=now() WHERE role_id=$2`
	cmd, err := r.db.Exec(ctx, query, name, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *roleRepository) DeleteByName(ctx context.Context, name string) error {
	const query = `DELETE FROM roles WHERE name=$1`
	cmd, err := r.db.Exec(ctx, query, name)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
