package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/roster-service/internal/domain"
	"github.com/spec-kit/roster-service/internal/events"
	apperrors "github.com/spec-kit/roster-service/pkg/util"
)

func newTestRosterService() (*RosterService, *fakePlayerRepo, *captureDispatcher) {
	players := newFakePlayerRepo()
	dispatcher := &captureDispatcher{}
	svc := NewRosterService(RosterDependencies{
		PlayerRepo: players,
		TeamRepo:   newFakeTeamRepo(),
		Dispatcher: dispatcher,
	})
	return svc, players, dispatcher
}

func TestRosterService_IsTeamFull(t *testing.T) {
	svc, players, _ := newTestRosterService()

	players.countInTeam = domain.TeamMaxPlayers - 1
	full, err := svc.IsTeamFull(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, full)

	players.countInTeam = domain.TeamMaxPlayers
	full, err = svc.IsTeamFull(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, full)
}

func TestRosterService_AssignToTeam(t *testing.T) {
	svc, players, dispatcher := newTestRosterService()

	require.NoError(t, svc.AssignToTeam(context.Background(), []int64{1, 2}, 7))
	require.NotNil(t, players.assignedTeam)
	assert.Equal(t, int64(7), *players.assignedTeam)
	assert.Equal(t, []int64{1, 2}, players.assignedIDs)

	published := dispatcher.published()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventPlayerAssigned, published[0].Type)
	payload, ok := published[0].Payload.(events.RosterChangePayload)
	require.True(t, ok)
	assert.Equal(t, []int64{1, 2}, payload.PlayerIDs)
}

func TestRosterService_AssignToTeam_EmptyBatch(t *testing.T) {
	svc, _, dispatcher := newTestRosterService()

	err := svc.AssignToTeam(context.Background(), nil, 7)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodePlayerConflict, apperrors.CodeOf(err))
	assert.Empty(t, dispatcher.published())
}

func TestRosterService_AssignToTeam_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		repoErr  error
		wantCode string
		wantMsg  string
	}{
		{
			name:     "full team",
			repoErr:  domain.ErrTeamFull,
			wantCode: apperrors.CodeTeamConflict,
			wantMsg:  "Team is already full. Choose some other team",
		},
		{
			name:     "unknown player in batch",
			repoErr:  domain.ErrPartialAssignment,
			wantCode: apperrors.CodePlayerConflict,
			wantMsg:  "Some of the players in input does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, players, dispatcher := newTestRosterService()
			players.assignErr = tt.repoErr

			err := svc.AssignToTeam(context.Background(), []int64{1}, 7)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperrors.CodeOf(err))
			assert.Equal(t, tt.wantMsg, apperrors.ToDomainError(err).Message)
			assert.Empty(t, dispatcher.published(), "no event on failure")
		})
	}
}

func TestRosterService_TransferToTeam(t *testing.T) {
	svc, _, dispatcher := newTestRosterService()

	require.NoError(t, svc.TransferToTeam(context.Background(), 7, 8, 3))

	published := dispatcher.published()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventPlayerTransferred, published[0].Type)
	payload := published[0].Payload.(events.RosterChangePayload)
	require.NotNil(t, payload.FromTeamID)
	require.NotNil(t, payload.TeamID)
	assert.Equal(t, int64(7), *payload.FromTeamID)
	assert.Equal(t, int64(8), *payload.TeamID)
}

func TestRosterService_TransferToTeam_NotInSourceTeam(t *testing.T) {
	svc, players, _ := newTestRosterService()
	players.transferErr = domain.ErrPlayerNotInSourceTeam

	err := svc.TransferToTeam(context.Background(), 7, 8, 3)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodePlayerConflict, apperrors.CodeOf(err))
	assert.Equal(t, "Player not in team", apperrors.ToDomainError(err).Message)
}

func TestRosterService_TransferToTeam_FullDestination(t *testing.T) {
	svc, players, _ := newTestRosterService()
	players.transferErr = domain.ErrTeamFull

	err := svc.TransferToTeam(context.Background(), 7, 8, 3)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeTeamConflict, apperrors.CodeOf(err))
}

func TestRosterService_UnassignFromTeam(t *testing.T) {
	svc, _, dispatcher := newTestRosterService()

	require.NoError(t, svc.UnassignFromTeam(context.Background(), 3))

	published := dispatcher.published()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventPlayerUnassigned, published[0].Type)
}
