package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin        = "admin"
	RoleUser         = "usuario"
	RoleVeterinarian = "veterinario"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUsernameTaken = errors.New("username already in use")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidRole = errors.New("invalid role")
var ErrForbidden = errors.New("access forbidden")
var ErrRefreshTokenInvalid = errors.New("refresh token invalid or expired")
var ErrTooManyLoginAttempts = errors.New("too many login attempts")

// User models a clinic account. PasswordHash and RefreshToken never leave the
// process: both are excluded from JSON and only the store reads them back.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"rol"`
	ProfileImage string    `json:"imagenPerfil,omitempty"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ValidRole reports whether r belongs to the closed role set.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser || r == RoleVeterinarian
}

// Actor is the authenticated identity the auth middleware attaches to a request.
type Actor struct {
	ID       int64
	Username string
	Role     string
}

// CanAccess is the single authorization predicate for owner-scoped resources:
// an actor may touch its own record, and admins may touch any record.
func CanAccess(actor Actor, ownerID int64) bool {
	return actor.ID == ownerID || actor.Role == RoleAdmin
}
