package repository

import (
	"context"

	"github.com/spec-kit/roster-service/internal/domain"
)

// UserRepository defines persistence access for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (username, password, first_name, last_name, email_id, profile_image_url, role_id, enabled, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, true, now(), now())
        RETURNING enabled, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		user.Username,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.EmailAddress,
		user.ProfileImageURL,
		user.Role.ID,
	).Scan(&user.Enabled, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `
        SELECT u.username, u.password, u.enabled, u.first_name, u.last_name,
               COALESCE(u.email_id, ''), COALESCE(u.profile_image_url, ''),
               r.role_id, r.name, u.created_at, u.updated_at
        FROM users u
        JOIN roles r ON u.role_id = r.role_id
        WHERE u.username = $1`
	var user domain.User
	if err := r.db.QueryRow(ctx, query, username).Scan(
		&user.Username,
		&user.PasswordHash,
		&user.Enabled,
		&user.FirstName,
		&user.LastName,
		&user.EmailAddress,
		&user.ProfileImageURL,
		&user.Role.ID,
		&user.Role.Name,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	const query = `
        SELECT u.username, u.enabled, u.first_name, u.last_name,
               COALESCE(u.email_id, ''), COALESCE(u.profile_image_url, ''),
               r.role_id, r.name, u.created_at, u.updated_at
        FROM users u
        JOIN roles r ON u.role_id = r.role_id
        ORDER BY u.username`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.Username,
			&user.Enabled,
			&user.FirstName,
			&user.LastName,
			&user.EmailAddress,
			&user.ProfileImageURL,
			&user.Role.ID,
			&user.Role.Name,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, user)
	}
	return result, rows.Err()
}

func (r *userRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE email_id = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
