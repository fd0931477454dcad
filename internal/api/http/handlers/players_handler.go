package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/roster-service/internal/api/dto"
	"github.com/spec-kit/roster-service/internal/service"
)

// PlayersHandler exposes player CRUD and roster membership changes.
type PlayersHandler struct {
	players *service.PlayerService
	roster  *service.RosterService
}

// NewPlayersHandler constructs handler.
func NewPlayersHandler(playerService *service.PlayerService, rosterService *service.RosterService) *PlayersHandler {
	return &PlayersHandler{players: playerService, roster: rosterService}
}

// List handles GET /vtms/api/v1/players.
func (h *PlayersHandler) List(c *fiber.Ctx) error {
	players, err := h.players.ListPlayers(c.UserContext())
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, dto.NewPlayerViews(players))
}

// ListAvailable handles GET /vtms/api/v1/players/available.
func (h *PlayersHandler) ListAvailable(c *fiber.Ctx) error {
	players, err := h.players.ListPlayersWithoutTeam(c.UserContext())
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, dto.NewPlayerViews(players))
}

// ListInTeam handles GET /vtms/api/v1/teams/:teamId/players.
func (h *PlayersHandler) ListInTeam(c *fiber.Ctx) error {
	teamID, err := pathID(c, "teamId")
	if err != nil {
		return err
	}
	players, err := h.players.ListPlayersInTeam(c.UserContext(), teamID)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, dto.NewPlayerViews(players))
}

// Get handles GET /vtms/api/v1/players/:playerId and the team-scoped
// GET /vtms/api/v1/teams/:teamId/players/:playerId.
func (h *PlayersHandler) Get(c *fiber.Ctx) error {
	playerID, err := pathID(c, "playerId")
	if err != nil {
		return err
	}
	player, err := h.players.GetPlayer(c.UserContext(), playerID)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, dto.NewPlayerView(player))
}

// Create handles POST /vtms/api/v1/players.
func (h *PlayersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "username, name required")
	}
	player, err := h.players.CreatePlayer(c.UserContext(), req.ToDomainPlayer())
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, dto.NewPlayerView(player))
}

// Update handles PUT /vtms/api/v1/players/:playerId.
func (h *PlayersHandler) Update(c *fiber.Ctx) error {
	playerID, err := pathID(c, "playerId")
	if err != nil {
		return err
	}
	var req dto.UpdatePlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.players.UpdatePlayer(c.UserContext(), req.ToDomainPlayer(playerID)); err != nil {
		return err
	}
	return success(c, http.StatusOK, nil)
}

// Delete handles DELETE /vtms/api/v1/players/:playerId.
func (h *PlayersHandler) Delete(c *fiber.Ctx) error {
	playerID, err := pathID(c, "playerId")
	if err != nil {
		return err
	}
	if err := h.players.DeletePlayer(c.UserContext(), playerID); err != nil {
		return err
	}
	return success(c, http.StatusOK, nil)
}

// Assign handles PUT /vtms/api/v1/players/assign.
func (h *PlayersHandler) Assign(c *fiber.Ctx) error {
	var req dto.AssignPlayersRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.roster.AssignToTeam(c.UserContext(), req.PlayerIDs, req.TeamID); err != nil {
		return err
	}
	return success(c, http.StatusOK, nil)
}

// Transfer handles PUT /vtms/api/v1/players/transfer.
func (h *PlayersHandler) Transfer(c *fiber.Ctx) error {
	var req dto.TransferPlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.roster.TransferToTeam(c.UserContext(), req.FromTeamID, req.ToTeamID, req.PlayerID); err != nil {
		return err
	}
	return success(c, http.StatusOK, nil)
}

// Unassign handles PUT /vtms/api/v1/players/unassign/:playerId.
func (h *PlayersHandler) Unassign(c *fiber.Ctx) error {
	playerID, err := pathID(c, "playerId")
	if err != nil {
		return err
	}
	if err := h.roster.UnassignFromTeam(c.UserContext(), playerID); err != nil {
		return err
	}
	return success(c, http.StatusOK, nil)
}
