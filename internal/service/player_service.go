package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/roster-service/internal/domain"
	"github.com/spec-kit/roster-service/internal/repository"
	apperrors "github.com/spec-kit/roster-service/pkg/util"
)

// PlayerService handles player CRUD and lookups. A player can only be
// created for an already registered user.
type PlayerService struct {
	players repository.PlayerRepository
	users   repository.UserRepository
}

// NewPlayerService creates the service.
func NewPlayerService(players repository.PlayerRepository, users repository.UserRepository) *PlayerService {
	return &PlayerService{players: players, users: users}
}

// CreatePlayer creates the player record for an existing user.
func (s *PlayerService) CreatePlayer(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	registered, err := s.users.UsernameExists(ctx, player.Username)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if !registered {
		return nil, apperrors.NewPlayerConflict("User not registered")
	}

	if err := s.players.Create(ctx, player); err != nil {
		return nil, apperrors.MapError(err)
	}
	return player, nil
}

// GetPlayer returns one player by id.
func (s *PlayerService) GetPlayer(ctx context.Context, id int64) (*domain.Player, error) {
	player, err := s.players.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Player")
		}
		return nil, apperrors.MapError(err)
	}
	return player, nil
}

// CurrentPlayer resolves the caller's own player record by username.
func (s *PlayerService) CurrentPlayer(ctx context.Context, username string) (*domain.Player, error) {
	player, err := s.players.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Player")
		}
		return nil, apperrors.MapError(err)
	}
	return player, nil
}

// ListPlayers returns every player.
func (s *PlayerService) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	players, err := s.players.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return players, nil
}

// ListPlayersInTeam returns the team's current roster.
func (s *PlayerService) ListPlayersInTeam(ctx context.Context, teamID int64) ([]domain.Player, error) {
	players, err := s.players.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return players, nil
}

// ListPlayersWithoutTeam returns players awaiting assignment.
func (s *PlayerService) ListPlayersWithoutTeam(ctx context.Context) ([]domain.Player, error) {
	players, err := s.players.ListWithoutTeam(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return players, nil
}

// UpdatePlayer updates descriptive player fields; team membership is not
// touched here.
func (s *PlayerService) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	if err := s.players.Update(ctx, player); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Player")
		}
		return apperrors.MapError(err)
	}
	return nil
}

// DeletePlayer removes a player record.
func (s *PlayerService) DeletePlayer(ctx context.Context, id int64) error {
	if err := s.players.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Player")
		}
		return apperrors.MapError(err)
	}
	return nil
}
