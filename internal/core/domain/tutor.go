package domain

import (
	"errors"
	"time"
)

var ErrTutorNotFound = errors.New("tutor not found")
var ErrTutorEmailTaken = errors.New("tutor email already registered")

// Tutor is a pet owner.
type Tutor struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nombre"`
	LastName  string    `json:"apellido"`
	Email     string    `json:"email"`
	Phone     string    `json:"telefono,omitempty"`
	Address   string    `json:"direccion,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
