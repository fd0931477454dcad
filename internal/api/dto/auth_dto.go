package dto

import (
	"github.com/spec-kit/roster-service/internal/auth"
	"github.com/spec-kit/roster-service/internal/domain"
)

// RegisterRequest payload for account creation.
type RegisterRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	EmailID         string `json:"emailId"`
	ProfileImageURL string `json:"profileImageUrl"`
	Role            string `json:"role"`
}

// SigninRequest payload for credential sign-in.
type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignoutRequest optionally widens signout to every session of the caller.
type SignoutRequest struct {
	LogoutAllSessions bool `json:"logoutAllSessions"`
}

// SigninResponse carries the issued token and the identity snapshot baked
// into it.
type SigninResponse struct {
	AccessToken string          `json:"accessToken"`
	ExpiresIn   int64           `json:"expiresIn"`
	User        auth.UserClaims `json:"user"`
}

// RoleView is the role reference rendered on user payloads.
type RoleView struct {
	ID   int64  `json:"roleId"`
	Name string `json:"name"`
}

// UserView renders an account without credential material.
type UserView struct {
	Username        string   `json:"username"`
	Enabled         bool     `json:"enabled"`
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	EmailID         string   `json:"emailId,omitempty"`
	ProfileImageURL string   `json:"profileImageUrl,omitempty"`
	Role            RoleView `json:"role"`
}

// NewUserView maps a domain user to its API shape.
func NewUserView(user *domain.User) UserView {
	return UserView{
		Username:        user.Username,
		Enabled:         user.Enabled,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		EmailID:         user.EmailAddress,
		ProfileImageURL: user.ProfileImageURL,
		Role:            RoleView{ID: user.Role.ID, Name: string(user.Role.Name)},
	}
}

// NewUserViews maps a slice of users.
func NewUserViews(users []domain.User) []UserView {
	views := make([]UserView, 0, len(users))
	for i := range users {
		views = append(views, NewUserView(&users[i]))
	}
	return views
}
