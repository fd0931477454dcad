package domain

import "time"

// RoleName enumerates the authorization categories attached to users.
type RoleName string

const (
	RoleAdmin  RoleName = "ADMIN"
	RoleCoach  RoleName = "COACH"
	RolePlayer RoleName = "PLAYER"
)

// Role is a named authorization category. Role names are unique.
type Role struct {
	ID        int64
	Name      RoleName
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPrivileged reports whether the role belongs to the admin class that
// bypasses ownership checks.
func IsPrivileged(name RoleName) bool {
	return name == RoleAdmin || name == RoleCoach
}
