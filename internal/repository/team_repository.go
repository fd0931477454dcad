package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/roster-service/internal/domain"
)

// TeamRepository manages persistence for teams.
type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id int64) (*domain.Team, error)
	List(ctx context.Context) ([]domain.Team, error)
	Update(ctx context.Context, id int64, name string, coachName *string) error
	Delete(ctx context.Context, id int64) error
}

type teamRepository struct {
	db DB
}

// NewTeamRepository returns a Postgres-backed implementation.
func NewTeamRepository(db DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	const query = `
        INSERT INTO teams (name, max_players, created_at, updated_at)
        VALUES ($1, $2, now(), now())
        RETURNING team_id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		team.Name,
		team.MaxPlayers,
	).Scan(&team.ID, &team.CreatedAt, &team.UpdatedAt)
}

func (r *teamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	const query = `
        SELECT team_id, name, max_players, coach_name, created_at, updated_at
        FROM teams WHERE team_id=$1`
	var team domain.Team
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&team.ID,
		&team.Name,
		&team.MaxPlayers,
		&team.CoachName,
		&team.CreatedAt,
		&team.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) List(ctx context.Context) ([]domain.Team, error) {
	const query = `
        SELECT team_id, name, max_players, coach_name, created_at, updated_at
        FROM teams ORDER BY team_id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Team
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.MaxPlayers, &team.CoachName, &team.CreatedAt, &team.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, team)
	}
	return result, rows.Err()
}

func (r *teamRepository) Update(ctx context.Context, id int64, name string, coachName *string) error {
	const query = `
        UPDATE teams SET name=$1, coach_name=$2, updated_at=now()
        WHERE team_id=$3`
	cmd, err := r.db.Exec(ctx, query, name, coachName, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *teamRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM teams WHERE team_id=$1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
