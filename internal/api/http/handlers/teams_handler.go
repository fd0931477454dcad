package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/roster-service/internal/api/dto"
	"github.com/spec-kit/roster-service/internal/service"
	apperrors "github.com/spec-kit/roster-service/pkg/util"
)

// TeamsHandler exposes team CRUD.
type TeamsHandler struct {
	teams *service.TeamService
}

// NewTeamsHandler constructs handler.
func NewTeamsHandler(teamService *service.TeamService) *TeamsHandler {
	return &TeamsHandler{teams: teamService}
}

// List handles GET /v1/vtms/api/teams.
func (h *TeamsHandler) List(c *fiber.Ctx) error {
	teams, err := h.teams.ListTeams(c.UserContext())
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, dto.NewTeamViews(teams))
}

// Get handles GET /v1/vtms/api/teams/:teamId.
func (h *TeamsHandler) Get(c *fiber.Ctx) error {
	teamID, err := pathID(c, "teamId")
	if err != nil {
		return err
	}
	team, err := h.teams.GetTeam(c.UserContext(), teamID)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, dto.NewTeamView(team))
}

// Create handles POST /v1/vtms/api/teams.
func (h *TeamsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	team, err := h.teams.CreateTeam(c.UserContext(), req.TeamName)
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, dto.NewTeamView(team))
}

// Update handles PUT /v1/vtms/api/teams/:teamId.
func (h *TeamsHandler) Update(c *fiber.Ctx) error {
	teamID, err := pathID(c, "teamId")
	if err != nil {
		return err
	}
	var req dto.UpdateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.TeamName == "" {
		return apperrors.NewTeamConflict("Team name is required")
	}
	if err := h.teams.UpdateTeam(c.UserContext(), teamID, req.TeamName, req.CoachName); err != nil {
		return err
	}
	return success(c, http.StatusOK, nil)
}

// Delete handles DELETE /v1/vtms/api/teams/:teamId.
func (h *TeamsHandler) Delete(c *fiber.Ctx) error {
	teamID, err := pathID(c, "teamId")
	if err != nil {
		return err
	}
	if err := h.teams.DeleteTeam(c.UserContext(), teamID); err != nil {
		return err
	}
	return success(c, http.StatusOK, nil)
}

// pathID parses a numeric id path parameter.
func pathID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		return 0, fiber.NewError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
