package ports

import (
	"context"

	"github.com/vetcare/clinic-api/internal/core/domain"
)

// LoginResult bundles everything a successful login returns.
type LoginResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

// AuthService is the session manager: it owns login, token refresh, logout
// and the authenticated profile lookup.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// Refresh exchanges a still-valid, still-current refresh token for a new
	// access token. The refresh token itself is not rotated.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	// Logout clears the stored refresh token. It must only be called with an
	// identity already established by the auth middleware, and is idempotent.
	Logout(ctx context.Context, userID int64) error
	Profile(ctx context.Context, userID int64) (*domain.User, error)
}

// LoginThrottle limits failed login attempts per username.
type LoginThrottle interface {
	// TooManyAttempts reports whether the username is currently locked out.
	TooManyAttempts(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}
