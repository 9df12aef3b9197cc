package domain

import "time"

// UserRole enumerates supported roles.
type UserRole string

const (
	UserRoleCreator  UserRole = "creator"
	UserRoleInvestor UserRole = "investor"
)

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	return r == UserRoleCreator || r == UserRoleInvestor
}

// User represents an account within the marketplace.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}

// IsCreator reports whether the user lists campaigns.
func (u User) IsCreator() bool {
	return u.Role == UserRoleCreator
}
