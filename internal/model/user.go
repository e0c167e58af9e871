package model

import "time"

// Roles assignable to a user. Moderators are vendor-side users who own
// and manage products; admins manage everything.
const (
	RoleUser      = "user"
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
)

// ValidRole reports whether s is one of the assignable roles.
func ValidRole(s string) bool {
	return s == RoleUser || s == RoleAdmin || s == RoleModerator
}

// User represents an application user record as stored in the `users`
// table. The password is stored only as a bcrypt hash; plaintext never
// reaches the repository layer.
//
// Fields:
//
//	ID             – primary key identifier of the user.
//	Name           – display name.
//	ProfilePicture – optional avatar URL.
//	Email          – unique email address.
//	PasswordHash   – bcrypt hashed password.
//	Role           – one of user, admin, moderator.
//	Location       – optional free-form location string.
//	IsActive       – whether the account is active.
//	CreatedAt      – timestamp of creation.
type User struct {
	ID             uint64    `json:"id"`
	Name           string    `json:"name"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           string    `json:"role"`
	Location       string    `json:"location,omitempty"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}
