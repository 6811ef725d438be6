package domain

import (
	"errors"
	"time"
)

var ErrPatientNotFound = errors.New("patient not found")

// Patient is a pet under the clinic's care, always linked to a tutor.
type Patient struct {
	ID         int64     `json:"id"`
	Name       string    `json:"nombre"`
	Species    string    `json:"especie,omitempty"`
	Breed      string    `json:"raza,omitempty"`
	Age        int       `json:"edad,omitempty"`
	Sterilized bool      `json:"esterilizado"`
	Sex        string    `json:"sexo,omitempty"`
	TutorID    int64     `json:"tutor_id"`
	Tutor      *Tutor    `json:"tutor,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
