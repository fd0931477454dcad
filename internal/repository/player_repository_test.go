package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/roster-service/internal/domain"
)

const countQueryPattern = `SELECT count\(\*\) FROM players WHERE team_id = \$1`

func TestPlayerRepository_AssignToTeam(t *testing.T) {
	tests := []struct {
		name      string
		playerIDs []int64
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name:      "assigns full batch",
			playerIDs: []int64{1, 2},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectQuery(countQueryPattern).
					WithArgs(int64(7)).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))
				mock.ExpectExec(`UPDATE players SET team_id = \$1`).
					WithArgs(int64(7), []int64{1, 2}).
					WillReturnResult(pgxmock.NewResult("UPDATE", 2))
				mock.ExpectCommit()
			},
		},
		{
			name:      "rejects full team before writing",
			playerIDs: []int64{1},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectQuery(countQueryPattern).
					WithArgs(int64(7)).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(domain.TeamMaxPlayers))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrTeamFull,
		},
		{
			name:      "rolls back when an id matches no player",
			playerIDs: []int64{1, 2, 99},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectQuery(countQueryPattern).
					WithArgs(int64(7)).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectExec(`UPDATE players SET team_id = \$1`).
					WithArgs(int64(7), []int64{1, 2, 99}).
					WillReturnResult(pgxmock.NewResult("UPDATE", 2))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrPartialAssignment,
		},
		{
			name:      "accepts a batch that overshoots from below",
			playerIDs: []int64{1, 2, 3},
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectQuery(countQueryPattern).
					WithArgs(int64(7)).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(domain.TeamMaxPlayers - 1))
				mock.ExpectExec(`UPDATE players SET team_id = \$1`).
					WithArgs(int64(7), []int64{1, 2, 3}).
					WillReturnResult(pgxmock.NewResult("UPDATE", 3))
				mock.ExpectCommit()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)

			repo := NewPlayerRepository(mock)
			err = repo.AssignToTeam(context.Background(), tt.playerIDs, 7)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPlayerRepository_TransferToTeam(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "moves the player between teams",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectQuery(countQueryPattern).
					WithArgs(int64(8)).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectExec(`UPDATE players SET team_id = \$1`).
					WithArgs(int64(8), int64(3), int64(7)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "rejects a full destination",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectQuery(countQueryPattern).
					WithArgs(int64(8)).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(domain.TeamMaxPlayers))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrTeamFull,
		},
		{
			name: "fails when the player is not on the source team",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectQuery(countQueryPattern).
					WithArgs(int64(8)).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectExec(`UPDATE players SET team_id = \$1`).
					WithArgs(int64(8), int64(3), int64(7)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrPlayerNotInSourceTeam,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)

			repo := NewPlayerRepository(mock)
			err = repo.TransferToTeam(context.Background(), 7, 8, 3)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPlayerRepository_UnassignFromTeam(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE players SET team_id = NULL`).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := NewPlayerRepository(mock)
	require.NoError(t, repo.UnassignFromTeam(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerRepository_UnassignFromTeam_NoPlayerIsNotAnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE players SET team_id = NULL`).
		WithArgs(int64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewPlayerRepository(mock)
	require.NoError(t, repo.UnassignFromTeam(context.Background(), 99))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerRepository_CountInTeam(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(countQueryPattern).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))

	repo := NewPlayerRepository(mock)
	count, err := repo.CountInTeam(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerRepository_Update_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE players`).
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewPlayerRepository(mock)
	err = repo.Update(context.Background(), &domain.Player{ID: 42, Name: "Sam Kerr", ShirtNo: 20})
	require.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerRepository_GetByID_ScansRosterReference(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	teamID := int64(7)
	teamName := "Blasters"
	positions := "GK,DF"
	rows := pgxmock.NewRows([]string{
		"player_id", "username", "name", "shirt_no", "player_type",
		"age", "height", "weight", "power", "speed", "location", "favourite_positions",
		"team_id", "team_name", "created_at", "updated_at",
	}).AddRow(
		int64(3), "skerr", "Sam Kerr", 20, (*domain.PlayerType)(nil),
		(*int)(nil), (*float64)(nil), (*float64)(nil), (*int)(nil), (*int)(nil), (*string)(nil), &positions,
		&teamID, &teamName, time.Now(), time.Now(),
	)
	mock.ExpectQuery(`SELECT(?s).+FROM players p`).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	repo := NewPlayerRepository(mock)
	player, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, player.Team)
	assert.Equal(t, int64(7), player.Team.ID)
	assert.Equal(t, "Blasters", player.Team.Name)
	assert.Equal(t, []string{"GK", "DF"}, player.Attributes.FavouritePositions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerRepository_GetByUsername_NoRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT(?s).+FROM players p`).
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	repo := NewPlayerRepository(mock)
	_, err = repo.GetByUsername(context.Background(), "ghost")
	require.True(t, errors.Is(err, pgx.ErrNoRows))
	assert.NoError(t, mock.ExpectationsWereMet())
}
