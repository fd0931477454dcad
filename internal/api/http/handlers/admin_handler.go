package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/roster-service/internal/api/dto"
	"github.com/spec-kit/roster-service/internal/service"
	apperrors "github.com/spec-kit/roster-service/pkg/util"
)

// AdminHandler exposes the internal-admin surface: role management and the
// account listing. The perimeter gate runs in front of every route here, so
// the handlers see only requests that carried the shared header secret.
type AdminHandler struct {
	roles *service.RoleService
	auth  *service.AuthService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(roleService *service.RoleService, authService *service.AuthService) *AdminHandler {
	return &AdminHandler{roles: roleService, auth: authService}
}

// AllUsers handles GET /vtms/internal-admin/v1/users/all.
func (h *AdminHandler) AllUsers(c *fiber.Ctx) error {
	users, err := h.auth.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, dto.NewUserViews(users))
}

// ListRoles handles GET /vtms/internal-admin/v1/roles.
func (h *AdminHandler) ListRoles(c *fiber.Ctx) error {
	roles, err := h.roles.ListRoles(c.UserContext())
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, dto.NewRoleViews(roles))
}

// CreateRole handles POST /vtms/internal-admin/v1/roles.
func (h *AdminHandler) CreateRole(c *fiber.Ctx) error {
	var req dto.CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return apperrors.NewDomainError(apperrors.CodeInternalAdmin400, "Role name is required", http.StatusBadRequest)
	}
	role, err := h.roles.CreateRole(c.UserContext(), req.Name)
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, dto.NewRoleView(role))
}

// UpdateRole handles PUT /vtms/internal-admin/v1/roles.
func (h *AdminHandler) UpdateRole(c *fiber.Ctx) error {
	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.RoleID == 0 || req.Name == "" {
		return apperrors.NewDomainError(apperrors.CodeInternalAdmin400, "Role id and name are required", http.StatusBadRequest)
	}
	if err := h.roles.UpdateRole(c.UserContext(), req.RoleID, req.Name); err != nil {
		return err
	}
	return success(c, http.StatusOK, nil)
}

// DeleteRole handles DELETE /vtms/internal-admin/v1/roles?name=.
func (h *AdminHandler) DeleteRole(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return apperrors.NewDomainError(apperrors.CodeInternalAdmin400, "Role name is required", http.StatusBadRequest)
	}
	if err := h.roles.DeleteRole(c.UserContext(), name); err != nil {
		return err
	}
	return success(c, http.StatusOK, nil)
}
