package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/roster-service/internal/auth"
	apperrors "github.com/spec-kit/roster-service/pkg/util"
)

// ProfileHandler returns the caller's own identity snapshot.
type ProfileHandler struct{}

// NewProfileHandler constructs handler.
func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// GetProfile handles GET /v1/vtms/api/profile. The payload comes straight
// from the verified token claims, no store lookup.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewMissingToken()
	}
	return success(c, http.StatusOK, principal.Claims.User)
}
