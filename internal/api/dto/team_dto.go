package dto

import "github.com/spec-kit/roster-service/internal/domain"

// CreateTeamRequest payload for new teams.
type CreateTeamRequest struct {
	TeamName string `json:"teamName"`
}

// UpdateTeamRequest payload for renaming a team or setting its coach.
type UpdateTeamRequest struct {
	TeamName  string  `json:"teamName"`
	CoachName *string `json:"coachName"`
}

// TeamView renders a team.
type TeamView struct {
	ID         int64   `json:"teamId"`
	Name       string  `json:"name"`
	MaxPlayers int     `json:"maxPlayers"`
	CoachName  *string `json:"coachName,omitempty"`
}

// NewTeamView maps a domain team to its API shape.
func NewTeamView(team *domain.Team) TeamView {
	return TeamView{
		ID:         team.ID,
		Name:       team.Name,
		MaxPlayers: team.MaxPlayers,
		CoachName:  team.CoachName,
	}
}

// NewTeamViews maps a slice of teams.
func NewTeamViews(teams []domain.Team) []TeamView {
	views := make([]TeamView, 0, len(teams))
	for i := range teams {
		views = append(views, NewTeamView(&teams[i]))
	}
	return views
}
