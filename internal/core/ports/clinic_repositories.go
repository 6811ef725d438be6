package ports

import (
	"context"

	"github.com/vetcare/clinic-api/internal/core/domain"
)

// TutorRepository persists pet owners. Email is unique at the store level.
type TutorRepository interface {
	Create(ctx context.Context, tutor *domain.Tutor) (*domain.Tutor, error)
	FindByID(ctx context.Context, id int64) (*domain.Tutor, error)
	FindByEmail(ctx context.Context, email string) (*domain.Tutor, error)
	FindAll(ctx context.Context) ([]domain.Tutor, error)
	Update(ctx context.Context, tutor *domain.Tutor) error
	Delete(ctx context.Context, id int64) error
}

// PatientRepository persists pets.
type PatientRepository interface {
	Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error)
	FindByID(ctx context.Context, id int64) (*domain.Patient, error)
	FindAll(ctx context.Context) ([]domain.Patient, error)
	FindByTutor(ctx context.Context, tutorID int64) ([]domain.Patient, error)
	Update(ctx context.Context, patient *domain.Patient) error
	Delete(ctx context.Context, id int64) error
}

// DoctorRepository persists the staff directory.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *domain.Doctor) (*domain.Doctor, error)
	FindByID(ctx context.Context, id int64) (*domain.Doctor, error)
	FindAll(ctx context.Context) ([]domain.Doctor, error)
	Update(ctx context.Context, doctor *domain.Doctor) error
	Delete(ctx context.Context, id int64) error
}
