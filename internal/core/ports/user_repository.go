package ports

import (
	"context"

	"github.com/vetcare/clinic-api/internal/core/domain"
)

// UserRepository defines the persistence contract for clinic accounts.
// The store enforces username/email uniqueness; refresh-token writes are
// atomic single-record updates.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// UpdateRefreshToken replaces the stored refresh token; an empty value
	// clears it. Last write wins under concurrent login/logout.
	UpdateRefreshToken(ctx context.Context, id int64, refreshToken string) error
	UpdateProfileImage(ctx context.Context, id int64, imageRef string) error
	Delete(ctx context.Context, id int64) error
}
