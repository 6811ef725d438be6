package service

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/vetcare/clinic-api/internal/core/domain"
	"github.com/vetcare/clinic-api/internal/core/ports"
)

type stubImageStore struct {
	saved   []string
	removed []string
}

func (s *stubImageStore) Save(_ context.Context, fileName string, content io.Reader) (string, error) {
	_, _ = io.Copy(io.Discard, content)
	ref := "stored-" + fileName
	s.saved = append(s.saved, ref)
	return ref, nil
}

func (s *stubImageStore) Remove(_ context.Context, ref string) error {
	s.removed = append(s.removed, ref)
	return nil
}

func newTestUserService(repo *stubUserRepo) (*UserService, *stubImageStore) {
	images := &stubImageStore{}
	return NewUserService(repo, images, zerolog.Nop()), images
}

func asActor(u *domain.User) domain.Actor {
	return domain.Actor{ID: u.ID, Username: u.Username, Role: u.Role}
}

func TestUserService_Register(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestUserService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterUserInput{
		Username: "alice",
		Password: "secret1",
		Email:    "alice@x.com",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.PasswordHash == "secret1" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserService_Register_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestUserService(repo)

	_, err := svc.Register(context.Background(), ports.RegisterUserInput{
		Username: "bob", Password: "secret1", Email: "bob@x.com", Role: "superuser",
	})
	if err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_Register_Duplicates(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestUserService(repo)

	mustRegister(t, svc, "alice", "alice@x.com")

	if _, err := svc.Register(context.Background(), ports.RegisterUserInput{
		Username: "alice", Password: "secret1", Email: "other@x.com",
	}); err != domain.ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterUserInput{
		Username: "alice2", Password: "secret1", Email: "alice@x.com",
	}); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func mustRegister(t *testing.T, svc *UserService, username, email string) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), ports.RegisterUserInput{
		Username: username, Password: "secret1", Email: email,
	})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return user
}

func TestUserService_Get_SelfOrAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestUserService(repo)

	alice := mustRegister(t, svc, "alice", "alice@x.com")
	bob := mustRegister(t, svc, "bob", "bob@x.com")
	admin := mustRegister(t, svc, "root", "root@x.com")
	admin.Role = domain.RoleAdmin

	if _, err := svc.Get(context.Background(), asActor(alice), alice.ID); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), asActor(bob), alice.ID); err != domain.ErrForbidden {
		t.Fatalf("cross-user read: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Get(context.Background(), asActor(admin), alice.ID); err != nil {
		t.Fatalf("admin read failed: %v", err)
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestUserService(repo)
	alice := mustRegister(t, svc, "alice", "alice@x.com")

	updated, err := svc.Update(context.Background(), asActor(alice), alice.ID, ports.UpdateUserInput{
		Password: "newsecret",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PasswordHash == alice.PasswordHash {
		t.Fatalf("password hash not re-derived")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newsecret")); err != nil {
		t.Fatalf("new hash does not match new password: %v", err)
	}
}

func TestUserService_Update_RoleChanges(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestUserService(repo)

	alice := mustRegister(t, svc, "alice", "alice@x.com")
	admin := mustRegister(t, svc, "root", "root@x.com")
	admin.Role = domain.RoleAdmin

	// Non-admins cannot escalate: the field is dropped, not an error.
	updated, err := svc.Update(context.Background(), asActor(alice), alice.ID, ports.UpdateUserInput{
		Role: domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Role != domain.RoleUser {
		t.Fatalf("non-admin changed a role: %q", updated.Role)
	}

	updated, err = svc.Update(context.Background(), asActor(admin), alice.ID, ports.UpdateUserInput{
		Role: domain.RoleVeterinarian,
	})
	if err != nil {
		t.Fatalf("admin update: %v", err)
	}
	if updated.Role != domain.RoleVeterinarian {
		t.Fatalf("admin role change not applied: %q", updated.Role)
	}
}

func TestUserService_Update_UsernameConflict(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestUserService(repo)

	alice := mustRegister(t, svc, "alice", "alice@x.com")
	mustRegister(t, svc, "bob", "bob@x.com")

	if _, err := svc.Update(context.Background(), asActor(alice), alice.ID, ports.UpdateUserInput{
		Username: "bob",
	}); err != domain.ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserService_Delete_RemovesImage(t *testing.T) {
	repo := newStubUserRepo()
	svc, images := newTestUserService(repo)

	alice := mustRegister(t, svc, "alice", "alice@x.com")
	bob := mustRegister(t, svc, "bob", "bob@x.com")

	if err := svc.Delete(context.Background(), asActor(bob), alice.ID); err != domain.ErrForbidden {
		t.Fatalf("cross-user delete: expected ErrForbidden, got %v", err)
	}

	_, err := svc.SetProfileImage(context.Background(), asActor(alice), alice.ID, ports.ImageUpload{
		FileName:    "face.png",
		ContentType: "image/png",
		Size:        128,
		Content:     bytes.NewReader([]byte("png-bytes")),
	})
	if err != nil {
		t.Fatalf("set image: %v", err)
	}

	if err := svc.Delete(context.Background(), asActor(alice), alice.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(images.removed) != 1 || images.removed[0] != "stored-face.png" {
		t.Fatalf("image not cleaned up: %v", images.removed)
	}
	if _, err := repo.FindByID(context.Background(), alice.ID); err != domain.ErrUserNotFound {
		t.Fatalf("user still present after delete")
	}
}

func TestUserService_SetProfileImage_Rules(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestUserService(repo)

	alice := mustRegister(t, svc, "alice", "alice@x.com")
	admin := mustRegister(t, svc, "root", "root@x.com")
	admin.Role = domain.RoleAdmin

	// Uploads are owner-only; even admins cannot push an image onto
	// someone else's profile.
	if _, err := svc.SetProfileImage(context.Background(), asActor(admin), alice.ID, ports.ImageUpload{
		FileName: "x.png", ContentType: "image/png", Size: 10, Content: bytes.NewReader(nil),
	}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	if _, err := svc.SetProfileImage(context.Background(), asActor(alice), alice.ID, ports.ImageUpload{
		FileName: "x.pdf", ContentType: "application/pdf", Size: 10, Content: bytes.NewReader(nil),
	}); err != ErrImageType {
		t.Fatalf("expected ErrImageType, got %v", err)
	}

	if _, err := svc.SetProfileImage(context.Background(), asActor(alice), alice.ID, ports.ImageUpload{
		FileName: "x.png", ContentType: "image/png", Size: maxImageSize + 1, Content: bytes.NewReader(nil),
	}); err != ErrImageTooLarge {
		t.Fatalf("expected ErrImageTooLarge, got %v", err)
	}
}
