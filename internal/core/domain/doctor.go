package domain

import (
	"errors"
	"time"
)

var ErrDoctorNotFound = errors.New("doctor not found")

// Doctor is a veterinarian on the clinic's staff directory.
type Doctor struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nombre"`
	LastName  string    `json:"apellido"`
	Specialty string    `json:"especialidad,omitempty"`
	Email     string    `json:"email"`
	Phone     string    `json:"telefono,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
