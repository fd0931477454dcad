package repository

import (
	"context"

	"github.com/spec-kit/roster-service/internal/domain"
)

// SessionRepository defines persistence access for issued session tokens.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, username, token string) error
	DeleteAll(ctx context.Context, username string) error
	DeleteByToken(ctx context.Context, token string) error
}

type sessionRepository struct {
	db DB
}

// NewSessionRepository returns a Postgres-backed implementation.
func NewSessionRepository(db DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	const query = `
        INSERT INTO user_tokens (username, secret_key, token, last_used)
        VALUES ($1, $2, $3, now())
        RETURNING id, last_used`
	return r.db.QueryRow(ctx, query,
		session.Username,
		session.SecretKey,
		session.Token,
	).Scan(&session.ID, &session.LastUsed)
}

func (r *sessionRepository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	const query = `
        SELECT id, username, secret_key, token, last_used
        FROM user_tokens WHERE token = $1`
	var session domain.Session
	if err := r.db.QueryRow(ctx, query, token).Scan(
		&session.ID,
		&session.Username,
		&session.SecretKey,
		&session.Token,
		&session.LastUsed,
	); err != nil {
		return nil, err
	}
	return &session, nil
}

// Delete removes the single session matching username and token. Deleting
// zero rows is not an error.
func (r *sessionRepository) Delete(ctx context.Context, username, token string) error {
	const query = `DELETE FROM user_tokens WHERE username = $1 AND token = $2`
	_, err := r.db.Exec(ctx, query, username, token)
	return err
}

// DeleteAll removes every session for the username (multi-device logout).
func (r *sessionRepository) DeleteAll(ctx context.Context, username string) error {
	const query = `DELETE FROM user_tokens WHERE username = $1`
	_, err := r.db.Exec(ctx, query, username)
	return err
}

// DeleteByToken removes a session by exact token match, used for lazy
// cleanup of expired sessions.
func (r *sessionRepository) DeleteByToken(ctx context.Context, token string) error {
	const query = `DELETE FROM user_tokens WHERE token = $1`
	_, err := r.db.Exec(ctx, query, token)
	return err
}
