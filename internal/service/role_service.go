package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/roster-service/internal/domain"
	"github.com/spec-kit/roster-service/internal/repository"
	apperrors "github.com/spec-kit/roster-service/pkg/util"
)

// RoleService handles role management for the internal-admin surface.
type RoleService struct {
	roles repository.RoleRepository
}

// NewRoleService creates the service.
func NewRoleService(roles repository.RoleRepository) *RoleService {
	return &RoleService{roles: roles}
}

// ListRoles returns all roles.
func (s *RoleService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return roles, nil
}

// GetByName resolves a role by its unique name.
func (s *RoleService) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	role, err := s.roles.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewRoleNotFound(name)
		}
		return nil, apperrors.MapError(err)
	}
	return role, nil
}

// CreateRole adds a new role name.
func (s *RoleService) CreateRole(ctx context.Context, name string) (*domain.Role, error) {
	role := &domain.Role{Name: domain.RoleName(name)}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, internalAdminError(err)
	}
	return role, nil
}

// UpdateRole renames an existing role.
func (s *RoleService) UpdateRole(ctx context.Context, id int64, name string) error {
	if err := s.roles.UpdateName(ctx, id, name); err != nil {
		return internalAdminError(err)
	}
	return nil
}

// DeleteRole removes a role by name.
func (s *RoleService) DeleteRole(ctx context.Context, name string) error {
	if err := s.roles.DeleteByName(ctx, name); err != nil {
		return internalAdminError(err)
	}
	return nil
}

func internalAdminError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewDomainError(apperrors.CodeInternalAdmin400, "Role does not exist", http.StatusBadRequest)
	}
	return apperrors.MapError(err)
}
