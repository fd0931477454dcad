package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/roster-service/internal/domain"
)

// PlayerRepository manages persistence for players, including the
// capacity-constrained roster mutations.
type PlayerRepository interface {
	Create(ctx context.Context, player *domain.Player) error
	GetByID(ctx context.Context, id int64) (*domain.Player, error)
	GetByUsername(ctx context.Context, username string) (*domain.Player, error)
	List(ctx context.Context) ([]domain.Player, error)
	ListByTeam(ctx context.Context, teamID int64) ([]domain.Player, error)
	ListWithoutTeam(ctx context.Context) ([]domain.Player, error)
	Update(ctx context.Context, player *domain.Player) error
	Delete(ctx context.Context, id int64) error

	CountInTeam(ctx context.Context, teamID int64) (int, error)
	AssignToTeam(ctx context.Context, playerIDs []int64, teamID int64) error
	TransferToTeam(ctx context.Context, fromTeamID, toTeamID, playerID int64) error
	UnassignFromTeam(ctx context.Context, playerID int64) error
}

type playerRepository struct {
	db DB
}

// NewPlayerRepository returns a Postgres-backed implementation.
func NewPlayerRepository(db DB) PlayerRepository {
	return &playerRepository{db: db}
}

const playerColumns = `
        p.player_id, p.username, p.name, p.shirt_no, p.player_type,
        p.age, p.height, p.weight, p.power, p.speed, p.location, p.favourite_positions,
        p.team_id, t.name, p.created_at, p.updated_at`

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var (
		player    domain.Player
		positions *string
		teamID    *int64
		teamName  *string
	)
	if err := row.Scan(
		&player.ID,
		&player.Username,
		&player.Name,
		&player.ShirtNo,
		&player.Type,
		&player.Attributes.Age,
		&player.Attributes.Height,
		&player.Attributes.Weight,
		&player.Attributes.Power,
		&player.Attributes.Speed,
		&player.Attributes.Location,
		&positions,
		&teamID,
		&teamName,
		&player.CreatedAt,
		&player.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if positions != nil && *positions != "" {
		player.Attributes.FavouritePositions = strings.Split(*positions, ",")
	}
	if teamID != nil {
		player.Team = &domain.PlayerTeam{ID: *teamID}
		if teamName != nil {
			player.Team.Name = *teamName
		}
	}
	return &player, nil
}

func (r *playerRepository) Create(ctx context.Context, player *domain.Player) error {
	const query = `
        INSERT INTO players (username, name, shirt_no, player_type, created_at, updated_at)
        VALUES ($1, $2, $3, $4, now(), now())
        RETURNING player_id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		player.Username,
		player.Name,
		player.ShirtNo,
		player.Type,
	).Scan(&player.ID, &player.CreatedAt, &player.UpdatedAt)
}

func (r *playerRepository) GetByID(ctx context.Context, id int64) (*domain.Player, error) {
	query := `
        SELECT` + playerColumns + `
        FROM players p
        LEFT JOIN teams t ON p.team_id = t.team_id
        WHERE p.player_id = $1`
	return scanPlayer(r.db.QueryRow(ctx, query, id))
}

func (r *playerRepository) GetByUsername(ctx context.Context, username string) (*domain.Player, error) {
	query := `
        SELECT` + playerColumns + `
        FROM players p
        LEFT JOIN teams t ON p.team_id = t.team_id
        WHERE p.username = $1`
	return scanPlayer(r.db.QueryRow(ctx, query, username))
}

func (r *playerRepository) List(ctx context.Context) ([]domain.Player, error) {
	query := `
        SELECT` + playerColumns + `
        FROM players p
        LEFT JOIN teams t ON p.team_id = t.team_id
        ORDER BY p.player_id`
	return r.queryPlayers(ctx, query)
}

func (r *playerRepository) ListByTeam(ctx context.Context, teamID int64) ([]domain.Player, error) {
	query := `
        SELECT` + playerColumns + `
        FROM players p
        JOIN teams t ON p.team_id = t.team_id
        WHERE p.team_id = $1
        ORDER BY p.player_id`
	return r.queryPlayers(ctx, query, teamID)
}

func (r *playerRepository) ListWithoutTeam(ctx context.Context) ([]domain.Player, error) {
	query := `
        SELECT` + playerColumns + `
        FROM players p
        LEFT JOIN teams t ON p.team_id = t.team_id
        WHERE p.team_id IS NULL
        ORDER BY p.player_id`
	return r.queryPlayers(ctx, query)
}

func (r *playerRepository) queryPlayers(ctx context.Context, query string, args ...any) ([]domain.Player, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *player)
	}
	return result, rows.Err()
}

func (r *playerRepository) Update(ctx context.Context, player *domain.Player) error {
	var positions *string
	if len(player.Attributes.FavouritePositions) > 0 {
		joined := strings.Join(player.Attributes.FavouritePositions, ",")
		positions = &joined
	}
	const query = `
        UPDATE players
        SET name=$1, shirt_no=$2, player_type=$3, age=$4, height=$5, weight=$6,
            power=$7, speed=$8, location=$9, favourite_positions=$10, updated_at=now()
        WHERE player_id=$11`
	cmd, err := r.db.Exec(ctx, query,
		player.Name,
		player.ShirtNo,
		player.Type,
		player.Attributes.Age,
		player.Attributes.Height,
		player.Attributes.Weight,
		player.Attributes.Power,
		player.Attributes.Speed,
		player.Attributes.Location,
		positions,
		player.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *playerRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM players WHERE player_id=$1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const countInTeamQuery = `SELECT count(*) FROM players WHERE team_id = $1`

func (r *playerRepository) CountInTeam(ctx context.Context, teamID int64) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, countInTeamQuery, teamID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func teamFullInTx(ctx context.Context, tx pgx.Tx, teamID int64) (bool, error) {
	var count int
	if err := tx.QueryRow(ctx, countInTeamQuery, teamID).Scan(&count); err != nil {
		return false, err
	}
	return count >= domain.TeamMaxPlayers, nil
}

// AssignToTeam moves every player in playerIDs onto the team inside one
// transaction. The capacity check guards against assigning into an already
// full team; a batch that pushes past capacity is accepted (lenient policy).
// The batch is all-or-nothing: if any id does not match a player row, the
// transaction rolls back and domain.ErrPartialAssignment is returned.
func (r *playerRepository) AssignToTeam(ctx context.Context, playerIDs []int64, teamID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	full, err := teamFullInTx(ctx, tx, teamID)
	if err != nil {
		return err
	}
	if full {
		return domain.ErrTeamFull
	}

	const query = `
        UPDATE players SET team_id = $1, updated_at = now()
        WHERE player_id = ANY ($2)`
	cmd, err := tx.Exec(ctx, query, teamID, playerIDs)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() != int64(len(playerIDs)) {
		return domain.ErrPartialAssignment
	}
	return tx.Commit(ctx)
}

// TransferToTeam moves a single player between teams. The UPDATE is
// conditioned on the player currently belonging to fromTeamID, so a stale
// source team surfaces as domain.ErrPlayerNotInSourceTeam.
func (r *playerRepository) TransferToTeam(ctx context.Context, fromTeamID, toTeamID, playerID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	full, err := teamFullInTx(ctx, tx, toTeamID)
	if err != nil {
		return err
	}
	if full {
		return domain.ErrTeamFull
	}

	const query = `
        UPDATE players SET team_id = $1, updated_at = now()
        WHERE player_id = $2 AND team_id = $3`
	cmd, err := tx.Exec(ctx, query, toTeamID, playerID, fromTeamID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrPlayerNotInSourceTeam
	}
	return tx.Commit(ctx)
}

// UnassignFromTeam clears the player's team unconditionally; idempotent.
func (r *playerRepository) UnassignFromTeam(ctx context.Context, playerID int64) error {
	const query = `
        UPDATE players SET team_id = NULL, updated_at = now()
        WHERE player_id = $1`
	_, err := r.db.Exec(ctx, query, playerID)
	return err
}
