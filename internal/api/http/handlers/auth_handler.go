package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/roster-service/internal/api/dto"
	"github.com/spec-kit/roster-service/internal/auth"
	"github.com/spec-kit/roster-service/internal/domain"
	"github.com/spec-kit/roster-service/internal/service"
	apperrors "github.com/spec-kit/roster-service/pkg/util"
)

// AuthHandler exposes registration and the session lifecycle.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /vtms/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" || req.Role == "" {
		return fiber.NewError(http.StatusBadRequest, "username, password, role required")
	}

	user, err := h.auth.Register(c.UserContext(), domain.NewUserData{
		Username:        req.Username,
		Password:        req.Password,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		EmailAddress:    req.EmailID,
		ProfileImageURL: req.ProfileImageURL,
		RoleName:        req.Role,
	})
	if err != nil {
		return err
	}

	return success(c, http.StatusCreated, dto.NewUserView(user))
}

// Signin handles POST /vtms/auth/signin.
func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var req dto.SigninRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewAuthenticationFailed("empty credentials")
	}

	result, err := h.auth.Signin(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, dto.SigninResponse{
		AccessToken: result.AccessToken,
		ExpiresIn:   int64(result.ExpiresIn.Seconds()),
		User:        result.User,
	})
}

// Signout handles POST /vtms/auth/signout. The current session always goes;
// logoutAllSessions widens the delete to every session of the caller.
func (h *AuthHandler) Signout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewMissingToken()
	}

	var req dto.SignoutRequest
	_ = c.BodyParser(&req)

	if err := h.auth.Signout(c.UserContext(), principal.Username(), principal.Token); err != nil {
		return err
	}
	if req.LogoutAllSessions {
		if err := h.auth.SignoutAllSessions(c.UserContext(), principal.Username()); err != nil {
			return err
		}
	}

	return success(c, http.StatusOK, nil)
}

// AllUsers handles GET /vtms/auth/all-users.
func (h *AuthHandler) AllUsers(c *fiber.Ctx) error {
	users, err := h.auth.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, dto.NewUserViews(users))
}
