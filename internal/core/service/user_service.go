package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/vetcare/clinic-api/internal/core/domain"
	"github.com/vetcare/clinic-api/internal/core/ports"
)

// passwordCost matches the work factor of 10 rounds used for every stored hash.
const passwordCost = bcrypt.DefaultCost

// UserService implements account management. Read/update/delete are gated by
// the self-or-admin predicate; image uploads are owner-only.
type UserService struct {
	repo   ports.UserRepository
	images ports.ImageStore
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, images ports.ImageStore, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, images: images, logger: logger}
}

// Register creates an account with a hashed password. The store's unique
// indexes keep the username/email checks race-free under concurrent signups.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), passwordCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Get returns an account, visible to its owner or any admin.
func (s *UserService) Get(ctx context.Context, actor domain.Actor, id int64) (*domain.User, error) {
	if !domain.CanAccess(actor, id) {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByID(ctx, id)
}

// Update applies the provided fields. Passwords are always re-hashed here;
// there is no implicit hash-on-write anywhere else. A role change is applied
// only when the actor is an admin and is otherwise dropped.
func (s *UserService) Update(ctx context.Context, actor domain.Actor, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	if !domain.CanAccess(actor, id) {
		return nil, domain.ErrForbidden
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != "" && input.Username != user.Username {
		if err := s.ensureUsernameFree(ctx, input.Username); err != nil {
			return nil, err
		}
		user.Username = input.Username
	}
	if input.Email != "" && input.Email != user.Email {
		if err := s.ensureEmailFree(ctx, input.Email); err != nil {
			return nil, err
		}
		user.Email = input.Email
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), passwordCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if input.Role != "" && actor.Role == domain.RoleAdmin {
		if !domain.ValidRole(input.Role) {
			return nil, domain.ErrInvalidRole
		}
		user.Role = input.Role
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account and its stored profile image, if any.
func (s *UserService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	if !domain.CanAccess(actor, id) {
		return domain.ErrForbidden
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if user.ProfileImage != "" {
		if err := s.images.Remove(ctx, user.ProfileImage); err != nil {
			s.logger.Warn().Err(err).Str("image", user.ProfileImage).Msg("failed to remove profile image")
		}
	}

	return s.repo.Delete(ctx, id)
}

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

const maxImageSize = 5 * 1024 * 1024

var ErrImageType = errors.New("unsupported image type")
var ErrImageTooLarge = errors.New("image exceeds the size limit")

// SetProfileImage stores a new profile image for the actor's own account,
// replacing the previous one.
func (s *UserService) SetProfileImage(ctx context.Context, actor domain.Actor, id int64, upload ports.ImageUpload) (*domain.User, error) {
	if actor.ID != id {
		return nil, domain.ErrForbidden
	}
	if _, ok := allowedImageTypes[upload.ContentType]; !ok {
		return nil, ErrImageType
	}
	if upload.Size > maxImageSize {
		return nil, ErrImageTooLarge
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ref, err := s.images.Save(ctx, upload.FileName, upload.Content)
	if err != nil {
		return nil, err
	}

	if user.ProfileImage != "" {
		if err := s.images.Remove(ctx, user.ProfileImage); err != nil {
			s.logger.Warn().Err(err).Str("image", user.ProfileImage).Msg("failed to remove previous image")
		}
	}

	if err := s.repo.UpdateProfileImage(ctx, id, ref); err != nil {
		return nil, err
	}
	user.ProfileImage = ref
	return user, nil
}

func (s *UserService) ensureUsernameFree(ctx context.Context, username string) error {
	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return domain.ErrUsernameTaken
	}
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil
	}
	return err
}

func (s *UserService) ensureEmailFree(ctx context.Context, email string) error {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return domain.ErrEmailTaken
	}
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil
	}
	return err
}
