// Package token issues and verifies the signed credentials of the API:
// short-lived access tokens carrying id/username/role and long-lived refresh
// tokens carrying id/username only.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/vetcare/clinic-api/internal/core/domain"
)

const (
	AccessTTL  = time.Hour
	RefreshTTL = 7 * 24 * time.Hour
)

// ErrExpired marks a structurally valid token past its expiry; clients should
// try the refresh flow. ErrInvalid covers every other verification failure and
// requires a new login.
var (
	ErrExpired = errors.New("token expired")
	ErrInvalid = errors.New("token invalid")
)

// Claims is the identity payload embedded in every signed token. Role is
// empty on refresh tokens.
type Claims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"rol,omitempty"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies tokens with a single process-wide HS256 secret.
type Issuer struct {
	secret []byte
}

// NewIssuer fails on an empty secret: the service must refuse to start rather
// than sign tokens with a blank key.
func NewIssuer(secret string) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is required")
	}
	return &Issuer{secret: []byte(secret)}, nil
}

// IssueAccess returns a signed access token valid for AccessTTL.
func (i *Issuer) IssueAccess(user *domain.User) (string, error) {
	return i.sign(&Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, AccessTTL)
}

// IssueRefresh returns a signed refresh token valid for RefreshTTL.
func (i *Issuer) IssueRefresh(user *domain.User) (string, error) {
	return i.sign(&Claims{
		UserID:   user.ID,
		Username: user.Username,
	}, RefreshTTL)
}

func (i *Issuer) sign(claims *Claims, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	// Timestamps have second resolution, so two tokens minted back to back
	// would otherwise be byte-identical. The jti makes every issuance unique,
	// which login relies on to supersede the previously stored refresh token.
	claims.ID = uuid.NewString()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify checks signature and expiry and returns the embedded claims.
// Expired tokens fail with ErrExpired, everything else with ErrInvalid.
func (i *Issuer) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !tkn.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
