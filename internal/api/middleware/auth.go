package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vetcare/clinic-api/internal/core/domain"
	"github.com/vetcare/clinic-api/internal/core/ports"
	"github.com/vetcare/clinic-api/internal/token"
)

// ActorKey is the echo context key under which Auth stores the domain.Actor.
const ActorKey = "actor"

// Auth is the bearer-token gate in front of every protected route. It
// verifies the access token, re-loads the user on every request (tokens can
// outlive accounts) and attaches the identity for downstream authorization.
// Expired tokens are reported distinctly from invalid ones so clients know
// whether to refresh or to log in again.
func Auth(verifier *token.Issuer, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization header must be: Bearer <token>")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				if errors.Is(err, token.ErrExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "user no longer exists")
				}
				return err
			}

			c.Set(ActorKey, domain.Actor{
				ID:       user.ID,
				Username: user.Username,
				Role:     user.Role,
			})

			return next(c)
		}
	}
}
