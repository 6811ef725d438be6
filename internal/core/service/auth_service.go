package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/vetcare/clinic-api/internal/core/domain"
	"github.com/vetcare/clinic-api/internal/core/ports"
	"github.com/vetcare/clinic-api/internal/token"
)

// AuthService is the session manager: login, refresh, logout and profile.
// It owns the single-active-refresh-token invariant: every login overwrites
// the stored refresh token, every logout clears it.
type AuthService struct {
	repo     ports.UserRepository
	tokens   *token.Issuer
	throttle ports.LoginThrottle
	logger   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *token.Issuer, throttle ports.LoginThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, throttle: throttle, logger: logger}
}

// Login verifies the credentials and issues a fresh access/refresh token pair.
// An unknown username and a wrong password fail with the same error so the
// endpoint cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		locked, err := s.throttle.TooManyAttempts(ctx, username)
		if err != nil {
			// Throttle outage must not take logins down with it.
			s.logger.Warn().Err(err).Msg("login throttle check failed")
		} else if locked {
			return nil, domain.ErrTooManyLoginAttempts
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, username)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, username)
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.IssueAccess(user)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.IssueRefresh(user)
	if err != nil {
		return nil, err
	}

	// Single point where the one-refresh-token-per-user invariant holds:
	// the new value atomically replaces whatever was stored before.
	if err := s.repo.UpdateRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.logger.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	user.RefreshToken = refreshToken
	return &ports.LoginResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh exchanges a refresh token for a new access token. The presented
// token must match the user's stored value exactly; a token superseded by a
// later login or cleared by logout is rejected even before it expires.
// The refresh token itself is not rotated on this path.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", domain.ErrRefreshTokenInvalid
	}

	claims, err := s.tokens.Verify(refreshToken)
	if err != nil {
		return "", domain.ErrRefreshTokenInvalid
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrRefreshTokenInvalid
		}
		return "", err
	}
	if user.RefreshToken != refreshToken {
		return "", domain.ErrRefreshTokenInvalid
	}

	return s.tokens.IssueAccess(user)
}

// Logout clears the stored refresh token. Callers must have already passed
// the auth middleware; the id is taken from the verified access token.
// Logging out twice, or after account deletion, still succeeds.
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	if err := s.repo.UpdateRefreshToken(ctx, userID, ""); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}
	return nil
}

// Profile returns the account behind an authenticated request. The token may
// outlive the account, in which case the lookup fails with ErrUserNotFound.
func (s *AuthService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		s.logger.Warn().Err(err).Msg("login throttle record failed")
	}
}
