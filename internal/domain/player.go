package domain

import (
	"strings"
	"time"
)

// PlayerType distinguishes regular players from coaches on a roster.
type PlayerType string

const (
	PlayerTypePlayer PlayerType = "PLAYER"
	PlayerTypeCoach  PlayerType = "COACH"
)

// PlayerTeam is the roster reference carried on a player, nil when the
// player is unassigned.
type PlayerTeam struct {
	ID   int64
	Name string
}

// PlayerAttributes holds descriptive, optional characteristics.
type PlayerAttributes struct {
	Age                *int
	Height             *float64
	Weight             *float64
	Power              *int
	Speed              *int
	Location           *string
	FavouritePositions []string
}

// Player belongs to exactly one user via username and to at most one team.
type Player struct {
	ID         int64
	Username   string
	Name       string
	ShirtNo    int
	Type       *PlayerType
	Team       *PlayerTeam
	Attributes PlayerAttributes
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Initials derives display initials from the first two words of the player
// name. Leading or doubled spaces and multi-byte runes are tolerated.
func (p *Player) Initials() string {
	initials := make([]rune, 0, 2)
	for _, part := range strings.Fields(p.Name) {
		initials = append(initials, []rune(part)[0])
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}

// TeamID returns the current team id, or nil when unassigned.
func (p *Player) TeamID() *int64 {
	if p.Team == nil {
		return nil
	}
	return &p.Team.ID
}
