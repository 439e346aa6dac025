package models

import "github.com/golang-jwt/jwt/v5"

// Role is the session role carried in the signed session token.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleAnonymous Role = "anonymous"
)

// SessionClaims is the minimal claim set of the admin session cookie.
type SessionClaims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the claims grant mutating access.
func (c *SessionClaims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}
