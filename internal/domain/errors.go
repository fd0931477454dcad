package domain

import "errors"

// Roster state-conflict errors raised inside store transactions. The service
// layer translates them to wire codes.
var (
	// ErrTeamFull is returned when the target team already holds its maximum
	// number of players.
	ErrTeamFull = errors.New("team is already full")

	// ErrPartialAssignment is returned when a bulk assignment matched fewer
	// players than requested; the whole batch is rolled back.
	ErrPartialAssignment = errors.New("some of the players in input do not exist")

	// ErrPlayerNotInSourceTeam is returned when a transfer's source team does
	// not match the player's current team.
	ErrPlayerNotInSourceTeam = errors.New("player not in source team")
)
