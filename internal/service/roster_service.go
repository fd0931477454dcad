package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/roster-service/internal/domain"
	"github.com/spec-kit/roster-service/internal/events"
	"github.com/spec-kit/roster-service/internal/repository"
	apperrors "github.com/spec-kit/roster-service/pkg/util"
)

// RosterService mutates player-to-team membership under the fixed capacity
// invariant. Capacity checks and writes run inside one store transaction, so
// concurrent assignments cannot both observe a non-full team and overshoot.
type RosterService struct {
	players    repository.PlayerRepository
	teams      repository.TeamRepository
	dispatcher events.Dispatcher
}

// RosterDependencies bundles repositories for the roster service.
type RosterDependencies struct {
	PlayerRepo repository.PlayerRepository
	TeamRepo   repository.TeamRepository
	Dispatcher events.Dispatcher
}

// NewRosterService creates the service.
func NewRosterService(deps RosterDependencies) *RosterService {
	return &RosterService{
		players:    deps.PlayerRepo,
		teams:      deps.TeamRepo,
		dispatcher: deps.Dispatcher,
	}
}

// IsTeamFull reports whether the team currently holds its maximum number of
// players. Mutating callers rely on the repository re-checking this inside
// the write transaction; this method is for read-only callers.
func (s *RosterService) IsTeamFull(ctx context.Context, teamID int64) (bool, error) {
	count, err := s.players.CountInTeam(ctx, teamID)
	if err != nil {
		return false, apperrors.MapError(err)
	}
	return count >= domain.TeamMaxPlayers, nil
}

// AssignToTeam puts every listed player on the team, all-or-nothing. An
// already full team is rejected before any write; a batch that pushes the
// roster past capacity from below is accepted (lenient policy).
func (s *RosterService) AssignToTeam(ctx context.Context, playerIDs []int64, teamID int64) error {
	if len(playerIDs) == 0 {
		return apperrors.NewPlayerConflict("No players to assign")
	}
	if err := s.players.AssignToTeam(ctx, playerIDs, teamID); err != nil {
		return mapRosterError(err)
	}
	s.publish(ctx, events.EventPlayerAssigned, events.RosterChangePayload{
		PlayerIDs: playerIDs,
		TeamID:    &teamID,
	})
	return nil
}

// TransferToTeam moves one player from fromTeamID to toTeamID. The source
// team must match the player's current team.
func (s *RosterService) TransferToTeam(ctx context.Context, fromTeamID, toTeamID, playerID int64) error {
	if err := s.players.TransferToTeam(ctx, fromTeamID, toTeamID, playerID); err != nil {
		return mapRosterError(err)
	}
	s.publish(ctx, events.EventPlayerTransferred, events.RosterChangePayload{
		PlayerIDs:  []int64{playerID},
		TeamID:     &toTeamID,
		FromTeamID: &fromTeamID,
	})
	return nil
}

// UnassignFromTeam clears the player's team membership. Idempotent.
func (s *RosterService) UnassignFromTeam(ctx context.Context, playerID int64) error {
	if err := s.players.UnassignFromTeam(ctx, playerID); err != nil {
		return apperrors.MapError(err)
	}
	s.publish(ctx, events.EventPlayerUnassigned, events.RosterChangePayload{
		PlayerIDs: []int64{playerID},
	})
	return nil
}

func mapRosterError(err error) error {
	switch {
	case errors.Is(err, domain.ErrTeamFull):
		return apperrors.NewTeamConflict("Team is already full. Choose some other team")
	case errors.Is(err, domain.ErrPartialAssignment):
		return apperrors.NewPlayerConflict("Some of the players in input does not exist")
	case errors.Is(err, domain.ErrPlayerNotInSourceTeam):
		return apperrors.NewPlayerConflict("Player not in team")
	case errors.Is(err, pgx.ErrNoRows):
		return apperrors.NewNotFound("Player")
	default:
		return apperrors.MapError(err)
	}
}

func (s *RosterService) publish(ctx context.Context, eventType events.EventType, payload events.RosterChangePayload) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.NewEvent(eventType, "", payload))
}
