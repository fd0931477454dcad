package dto

import "github.com/spec-kit/roster-service/internal/domain"

// PlayerInfo carries the optional descriptive characteristics of a player.
type PlayerInfo struct {
	Age                *int     `json:"age,omitempty"`
	Height             *float64 `json:"height,omitempty"`
	Weight             *float64 `json:"weight,omitempty"`
	Power              *int     `json:"power,omitempty"`
	Speed              *int     `json:"speed,omitempty"`
	Location           *string  `json:"location,omitempty"`
	FavouritePositions []string `json:"favouritePositions,omitempty"`
}

// CreatePlayerRequest payload for new players. The username must belong to a
// registered account.
type CreatePlayerRequest struct {
	Username       string             `json:"username"`
	Name           string             `json:"name"`
	ShirtNo        int                `json:"shirtNo"`
	PlayerType     *domain.PlayerType `json:"playerType"`
	AdditionalInfo PlayerInfo         `json:"additionalInfo"`
}

// UpdatePlayerRequest payload for descriptive updates; team membership moves
// through the roster endpoints instead.
type UpdatePlayerRequest struct {
	Name           string             `json:"name"`
	ShirtNo        int                `json:"shirtNo"`
	PlayerType     *domain.PlayerType `json:"playerType"`
	AdditionalInfo PlayerInfo         `json:"additionalInfo"`
}

// AssignPlayersRequest puts a batch of players on one team.
type AssignPlayersRequest struct {
	PlayerIDs []int64 `json:"playerIds"`
	TeamID    int64   `json:"teamId"`
}

// TransferPlayerRequest moves one player between teams.
type TransferPlayerRequest struct {
	PlayerID   int64 `json:"playerId"`
	FromTeamID int64 `json:"fromTeamId"`
	ToTeamID   int64 `json:"toTeamId"`
}

// PlayerTeamView is the roster reference rendered on player payloads.
type PlayerTeamView struct {
	ID   int64  `json:"teamId"`
	Name string `json:"name"`
}

// PlayerView renders a player.
type PlayerView struct {
	ID             int64              `json:"playerId"`
	Username       string             `json:"username"`
	Name           string             `json:"name"`
	Initials       string             `json:"initials"`
	ShirtNo        int                `json:"shirtNo"`
	PlayerType     *domain.PlayerType `json:"playerType,omitempty"`
	Team           *PlayerTeamView    `json:"team,omitempty"`
	AdditionalInfo PlayerInfo         `json:"additionalInfo"`
}

// NewPlayerView maps a domain player to its API shape.
func NewPlayerView(player *domain.Player) PlayerView {
	view := PlayerView{
		ID:         player.ID,
		Username:   player.Username,
		Name:       player.Name,
		Initials:   player.Initials(),
		ShirtNo:    player.ShirtNo,
		PlayerType: player.Type,
		AdditionalInfo: PlayerInfo{
			Age:                player.Attributes.Age,
			Height:             player.Attributes.Height,
			Weight:             player.Attributes.Weight,
			Power:              player.Attributes.Power,
			Speed:              player.Attributes.Speed,
			Location:           player.Attributes.Location,
			FavouritePositions: player.Attributes.FavouritePositions,
		},
	}
	if player.Team != nil {
		view.Team = &PlayerTeamView{ID: player.Team.ID, Name: player.Team.Name}
	}
	return view
}

// NewPlayerViews maps a slice of players.
func NewPlayerViews(players []domain.Player) []PlayerView {
	views := make([]PlayerView, 0, len(players))
	for i := range players {
		views = append(views, NewPlayerView(&players[i]))
	}
	return views
}

// ToDomainPlayer builds the domain player from a create request.
func (r CreatePlayerRequest) ToDomainPlayer() *domain.Player {
	return &domain.Player{
		Username:   r.Username,
		Name:       r.Name,
		ShirtNo:    r.ShirtNo,
		Type:       r.PlayerType,
		Attributes: r.AdditionalInfo.toDomain(),
	}
}

// ToDomainPlayer builds the domain player from an update request.
func (r UpdatePlayerRequest) ToDomainPlayer(id int64) *domain.Player {
	return &domain.Player{
		ID:         id,
		Name:       r.Name,
		ShirtNo:    r.ShirtNo,
		Type:       r.PlayerType,
		Attributes: r.AdditionalInfo.toDomain(),
	}
}

func (i PlayerInfo) toDomain() domain.PlayerAttributes {
	return domain.PlayerAttributes{
		Age:                i.Age,
		Height:             i.Height,
		Weight:             i.Weight,
		Power:              i.Power,
		Speed:              i.Speed,
		Location:           i.Location,
		FavouritePositions: i.FavouritePositions,
	}
}
