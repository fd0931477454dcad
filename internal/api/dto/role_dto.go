package dto

import "github.com/spec-kit/roster-service/internal/domain"

// CreateRoleRequest payload for new roles on the internal-admin surface.
type CreateRoleRequest struct {
	Name string `json:"name"`
}

// UpdateRoleRequest payload for renaming a role.
type UpdateRoleRequest struct {
	RoleID int64  `json:"roleId"`
	Name   string `json:"name"`
}

// NewRoleView maps a domain role to its API shape.
func NewRoleView(role *domain.Role) RoleView {
	return RoleView{ID: role.ID, Name: string(role.Name)}
}

// NewRoleViews maps a slice of roles.
func NewRoleViews(roles []domain.Role) []RoleView {
	views := make([]RoleView, 0, len(roles))
	for i := range roles {
		views = append(views, NewRoleView(&roles[i]))
	}
	return views
}
