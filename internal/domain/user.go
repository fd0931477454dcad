package domain

import "time"

// User is the domain model for registered accounts. The username is the
// identity key; the password hash never leaves the service layer.
type User struct {
	Username        string
	PasswordHash    string
	Enabled         bool
	FirstName       string
	LastName        string
	EmailAddress    string
	ProfileImageURL string
	Role            Role
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FullName joins the name parts the way tokens present them.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// NewUserData carries registration input before hashing.
type NewUserData struct {
	Username        string
	Password        string
	FirstName       string
	LastName        string
	EmailAddress    string
	ProfileImageURL string
	RoleName        string
}
