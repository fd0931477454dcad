package service

import (
	"context"
	"errors"
	"unicode"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/roster-service/internal/domain"
	"github.com/spec-kit/roster-service/internal/repository"
	apperrors "github.com/spec-kit/roster-service/pkg/util"
)

// TeamService handles team CRUD. Roster membership changes live in
// RosterService.
type TeamService struct {
	teams repository.TeamRepository
}

// NewTeamService creates the service.
func NewTeamService(teams repository.TeamRepository) *TeamService {
	return &TeamService{teams: teams}
}

// ListTeams returns all teams.
func (s *TeamService) ListTeams(ctx context.Context) ([]domain.Team, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return teams, nil
}

// GetTeam returns one team by id.
func (s *TeamService) GetTeam(ctx context.Context, id int64) (*domain.Team, error) {
	team, err := s.teams.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Team")
		}
		return nil, apperrors.MapError(err)
	}
	return team, nil
}

// CreateTeam creates a team with the fixed roster capacity. The name is
// stored with its first letter capitalized.
func (s *TeamService) CreateTeam(ctx context.Context, name string) (*domain.Team, error) {
	if name == "" {
		return nil, apperrors.NewTeamConflict("Team name is required")
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	team := &domain.Team{
		Name:       string(runes),
		MaxPlayers: domain.TeamMaxPlayers,
	}
	if err := s.teams.Create(ctx, team); err != nil {
		return nil, apperrors.NewTeamConflict("Error creating team")
	}
	return team, nil
}

// UpdateTeam renames a team and optionally sets its coach.
func (s *TeamService) UpdateTeam(ctx context.Context, id int64, name string, coachName *string) error {
	if err := s.teams.Update(ctx, id, name, coachName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Team")
		}
		return apperrors.MapError(err)
	}
	return nil
}

// DeleteTeam removes a team; its players fall back to unassigned via the
// store's ON DELETE SET NULL.
func (s *TeamService) DeleteTeam(ctx context.Context, id int64) error {
	if err := s.teams.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Team")
		}
		return apperrors.MapError(err)
	}
	return nil
}
