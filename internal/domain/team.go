package domain

import "time"

// TeamMaxPlayers is the fixed roster capacity for every team.
const TeamMaxPlayers = 6

// Team groups up to MaxPlayers players and optionally references a coach.
type Team struct {
	ID         int64
	Name       string
	MaxPlayers int
	CoachName  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
