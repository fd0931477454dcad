package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/roster-service/pkg/util"
)

// PublicHandler serves unauthenticated discovery endpoints.
type PublicHandler struct{}

// NewPublicHandler constructs handler.
func NewPublicHandler() *PublicHandler {
	return &PublicHandler{}
}

// ResponseCodes handles GET /vtms/api/v1/supported-response-codes. Clients
// branch on these codes, so the list is published.
func (h *PublicHandler) ResponseCodes(c *fiber.Ctx) error {
	return success(c, http.StatusOK, fiber.Map{
		"clientErrors": fiber.Map{
			"unAuthorized": []string{
				apperrors.CodeAuthFailed,
				apperrors.CodeMissingToken,
				apperrors.CodeTokenExpired,
				apperrors.CodeRoleNotPermitted,
				apperrors.CodeTeamForbidden,
				apperrors.CodePlayerForbidden,
				apperrors.CodeInternalAdmin401,
			},
			"badRequest": []string{
				apperrors.CodeTeamConflict,
				apperrors.CodePlayerConflict,
				apperrors.CodeInternalAdmin400,
			},
			"forbidden": []string{apperrors.CodeAccountDisabled},
			"conflict":  []string{apperrors.CodeDuplicate},
			"notFound":  []string{apperrors.CodeRoleNotFound, apperrors.CodeNotFound},
		},
		"serverErrors": []string{apperrors.CodeInternal},
	})
}
