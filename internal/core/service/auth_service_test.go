package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/vetcare/clinic-api/internal/core/domain"
	"github.com/vetcare/clinic-api/internal/core/ports"
	"github.com/vetcare/clinic-api/internal/token"
)

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = r.nextID
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) UpdateRefreshToken(_ context.Context, id int64, refreshToken string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.RefreshToken = refreshToken
	return nil
}

func (r *stubUserRepo) UpdateProfileImage(_ context.Context, id int64, imageRef string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.ProfileImage = imageRef
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubThrottle struct {
	failures map[string]int
	locked   map[string]bool
}

func newStubThrottle() *stubThrottle {
	return &stubThrottle{failures: make(map[string]int), locked: make(map[string]bool)}
}

func (t *stubThrottle) TooManyAttempts(_ context.Context, username string) (bool, error) {
	return t.locked[username], nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, username string) error {
	t.failures[username]++
	return nil
}

func (t *stubThrottle) Reset(_ context.Context, username string) error {
	t.failures[username] = 0
	return nil
}

func seedUser(t *testing.T, repo *stubUserRepo, username, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user, err := repo.Create(context.Background(), &domain.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func newTestAuthService(t *testing.T, repo *stubUserRepo, throttle ports.LoginThrottle) *AuthService {
	t.Helper()
	issuer, err := token.NewIssuer("test-secret")
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}
	return NewAuthService(repo, issuer, throttle, zerolog.Nop())
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "secret1")
	svc := newTestAuthService(t, repo, nil)

	result, err := svc.Login(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", result)
	}
	if result.User == nil || result.User.Username != "alice" {
		t.Fatalf("unexpected user: %+v", result.User)
	}

	stored, _ := repo.FindByID(context.Background(), result.User.ID)
	if stored.RefreshToken != result.RefreshToken {
		t.Fatalf("refresh token not persisted on the user record")
	}
}

func TestAuthService_Login_SameErrorForUnknownUserAndWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "secret1")
	svc := newTestAuthService(t, repo, nil)

	_, errWrongPass := svc.Login(context.Background(), "alice", "nope")
	_, errNoUser := svc.Login(context.Background(), "ghost", "nope")

	if errWrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPass)
	}
	if errNoUser != errWrongPass {
		t.Fatalf("username enumeration: errors differ (%v vs %v)", errNoUser, errWrongPass)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "secret1")
	throttle := newStubThrottle()
	svc := newTestAuthService(t, repo, throttle)

	if _, err := svc.Login(context.Background(), "alice", "nope"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if throttle.failures["alice"] != 1 {
		t.Fatalf("failure not recorded, got %d", throttle.failures["alice"])
	}

	throttle.locked["alice"] = true
	if _, err := svc.Login(context.Background(), "alice", "secret1"); err != domain.ErrTooManyLoginAttempts {
		t.Fatalf("expected ErrTooManyLoginAttempts, got %v", err)
	}

	throttle.locked["alice"] = false
	if _, err := svc.Login(context.Background(), "alice", "secret1"); err != nil {
		t.Fatalf("login after unlock failed: %v", err)
	}
	if throttle.failures["alice"] != 0 {
		t.Fatalf("successful login should reset the counter, got %d", throttle.failures["alice"])
	}
}

func TestAuthService_SecondLoginInvalidatesFirstRefreshToken(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "secret1")
	svc := newTestAuthService(t, repo, nil)

	first, err := svc.Login(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	second, err := svc.Login(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}

	// The first token has not expired, yet it no longer matches the stored
	// value and must be rejected.
	if _, err := svc.Refresh(context.Background(), first.RefreshToken); err != domain.ErrRefreshTokenInvalid {
		t.Fatalf("stale refresh token: expected ErrRefreshTokenInvalid, got %v", err)
	}
	if _, err := svc.Refresh(context.Background(), second.RefreshToken); err != nil {
		t.Fatalf("current refresh token rejected: %v", err)
	}
}

func TestAuthService_Refresh_DoesNotRotate(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo, "alice", "secret1")
	svc := newTestAuthService(t, repo, nil)

	result, err := svc.Login(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	accessToken, err := svc.Refresh(context.Background(), result.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if accessToken == "" {
		t.Fatalf("expected a new access token")
	}

	stored, _ := repo.FindByID(context.Background(), user.ID)
	if stored.RefreshToken != result.RefreshToken {
		t.Fatalf("refresh must not rotate the stored refresh token")
	}

	// The same refresh token keeps working.
	if _, err := svc.Refresh(context.Background(), result.RefreshToken); err != nil {
		t.Fatalf("second refresh with same token failed: %v", err)
	}
}

func TestAuthService_Refresh_Rejections(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo, "alice", "secret1")
	svc := newTestAuthService(t, repo, nil)

	if _, err := svc.Refresh(context.Background(), ""); err != domain.ErrRefreshTokenInvalid {
		t.Fatalf("empty token: expected ErrRefreshTokenInvalid, got %v", err)
	}
	if _, err := svc.Refresh(context.Background(), "garbage"); err != domain.ErrRefreshTokenInvalid {
		t.Fatalf("garbage token: expected ErrRefreshTokenInvalid, got %v", err)
	}

	result, err := svc.Login(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	// Structurally valid token whose subject disappeared.
	if err := repo.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Refresh(context.Background(), result.RefreshToken); err != domain.ErrRefreshTokenInvalid {
		t.Fatalf("deleted subject: expected ErrRefreshTokenInvalid, got %v", err)
	}
}

func TestAuthService_LogoutClearsAndIsIdempotent(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo, "alice", "secret1")
	svc := newTestAuthService(t, repo, nil)

	result, err := svc.Login(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(context.Background(), user.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Refresh(context.Background(), result.RefreshToken); err != domain.ErrRefreshTokenInvalid {
		t.Fatalf("refresh after logout: expected ErrRefreshTokenInvalid, got %v", err)
	}

	// Second logout with no active token still succeeds.
	if err := svc.Logout(context.Background(), user.ID); err != nil {
		t.Fatalf("repeated logout: %v", err)
	}

	// Logout for a deleted account succeeds too.
	_ = repo.Delete(context.Background(), user.ID)
	if err := svc.Logout(context.Background(), user.ID); err != nil {
		t.Fatalf("logout after delete: %v", err)
	}
}

func TestAuthService_Profile(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo, "alice", "secret1")
	svc := newTestAuthService(t, repo, nil)

	if _, err := svc.Login(context.Background(), "alice", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}

	profile, err := svc.Profile(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}

	// The outbound representation must never contain the hash or the token.
	raw, err := json.Marshal(profile)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	if strings.Contains(body, profile.PasswordHash) || strings.Contains(body, "password") {
		t.Fatalf("serialized profile leaks the password hash: %s", body)
	}
	if strings.Contains(body, "refreshToken") || strings.Contains(body, profile.RefreshToken) && profile.RefreshToken != "" {
		t.Fatalf("serialized profile leaks the refresh token: %s", body)
	}

	_ = repo.Delete(context.Background(), user.ID)
	if _, err := svc.Profile(context.Background(), user.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound after deletion, got %v", err)
	}
}
