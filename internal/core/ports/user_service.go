package ports

import (
	"context"
	"io"

	"github.com/vetcare/clinic-api/internal/core/domain"
)

// RegisterUserInput carries the public registration fields. Role defaults to
// the plain user role when empty.
type RegisterUserInput struct {
	Username string
	Password string
	Email    string
	Role     string
}

// UpdateUserInput carries optional account mutations; empty fields are left
// untouched. Role is only applied when the acting user is an admin.
type UpdateUserInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// ImageUpload is a profile image submitted by the owner of the account.
type ImageUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// UserService implements account management with self-or-admin authorization.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	Get(ctx context.Context, actor domain.Actor, id int64) (*domain.User, error)
	Update(ctx context.Context, actor domain.Actor, id int64, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, actor domain.Actor, id int64) error
	SetProfileImage(ctx context.Context, actor domain.Actor, id int64, upload ImageUpload) (*domain.User, error)
}

// ImageStore persists uploaded profile images and returns an opaque reference.
type ImageStore interface {
	Save(ctx context.Context, fileName string, content io.Reader) (string, error)
	Remove(ctx context.Context, ref string) error
}
