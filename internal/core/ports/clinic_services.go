package ports

import (
	"context"

	"github.com/vetcare/clinic-api/internal/core/domain"
)

// TutorInput carries tutor fields for create and update.
type TutorInput struct {
	Name     string
	LastName string
	Email    string
	Phone    string
	Address  string
}

type TutorService interface {
	Create(ctx context.Context, input TutorInput) (*domain.Tutor, error)
	List(ctx context.Context) ([]domain.Tutor, error)
	Update(ctx context.Context, id int64, input TutorInput) (*domain.Tutor, error)
	Delete(ctx context.Context, id int64) error
}

// PatientInput carries patient fields for create and update.
type PatientInput struct {
	Name       string
	Species    string
	Breed      string
	Age        int
	Sterilized bool
	Sex        string
	TutorID    int64
}

type PatientService interface {
	Create(ctx context.Context, input PatientInput) (*domain.Patient, error)
	List(ctx context.Context) ([]domain.Patient, error)
	ListByTutor(ctx context.Context, tutorID int64) ([]domain.Patient, error)
	Update(ctx context.Context, id int64, input PatientInput) (*domain.Patient, error)
	Delete(ctx context.Context, id int64) error
}

// DoctorInput carries doctor fields for create and update.
type DoctorInput struct {
	Name      string
	LastName  string
	Specialty string
	Email     string
	Phone     string
}

type DoctorService interface {
	Create(ctx context.Context, input DoctorInput) (*domain.Doctor, error)
	List(ctx context.Context) ([]domain.Doctor, error)
	Update(ctx context.Context, id int64, input DoctorInput) (*domain.Doctor, error)
	Delete(ctx context.Context, id int64) error
}
