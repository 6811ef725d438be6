package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vetcare/clinic-api/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{ID: 7, Username: "alice", Role: domain.RoleAdmin}
}

func TestNewIssuer_EmptySecret(t *testing.T) {
	if _, err := NewIssuer(""); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestIssuer_AccessRoundTrip(t *testing.T) {
	issuer, err := NewIssuer("secret")
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}

	signed, err := issuer.IssueAccess(testUser())
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	claims, err := issuer.Verify(signed)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "alice" || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > AccessTTL {
		t.Fatalf("access expiry out of range: %v", claims.ExpiresAt)
	}
}

func TestIssuer_RefreshOmitsRole(t *testing.T) {
	issuer, _ := NewIssuer("secret")

	signed, err := issuer.IssueRefresh(testUser())
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}

	claims, err := issuer.Verify(signed)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Role != "" {
		t.Fatalf("refresh token should not carry a role, got %q", claims.Role)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) <= AccessTTL {
		t.Fatalf("refresh expiry should exceed the access TTL: %v", claims.ExpiresAt)
	}
}

func TestIssuer_ConsecutiveIssuancesDiffer(t *testing.T) {
	issuer, _ := NewIssuer("secret")
	user := testUser()

	// Issued within the same second; the jti must still make them distinct so
	// a new login never reproduces the refresh token it is meant to replace.
	first, err := issuer.IssueRefresh(user)
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}
	second, err := issuer.IssueRefresh(user)
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}
	if first == second {
		t.Fatalf("back-to-back refresh tokens are identical")
	}

	claims, err := issuer.Verify(second)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.ID == "" {
		t.Fatalf("token carries no unique id")
	}
}

func TestIssuer_Expired(t *testing.T) {
	issuer, _ := NewIssuer("secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID:   7,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := issuer.Verify(signed); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestIssuer_WrongSecret(t *testing.T) {
	issuer, _ := NewIssuer("secret")
	other, _ := NewIssuer("other-secret")

	signed, err := other.IssueAccess(testUser())
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	if _, err := issuer.Verify(signed); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestIssuer_Garbage(t *testing.T) {
	issuer, _ := NewIssuer("secret")
	if _, err := issuer.Verify("not-a-token"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}
