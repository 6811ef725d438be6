package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vetcare/clinic-api/internal/core/domain"
	"github.com/vetcare/clinic-api/internal/core/ports"
)

// PatientService manages pets. Every patient must reference an existing tutor.
type PatientService struct {
	repo   ports.PatientRepository
	tutors ports.TutorRepository
	logger zerolog.Logger
}

func NewPatientService(repo ports.PatientRepository, tutors ports.TutorRepository, logger zerolog.Logger) *PatientService {
	return &PatientService{repo: repo, tutors: tutors, logger: logger}
}

func (s *PatientService) Create(ctx context.Context, input ports.PatientInput) (*domain.Patient, error) {
	if _, err := s.tutors.FindByID(ctx, input.TutorID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Patient{
		Name:       input.Name,
		Species:    input.Species,
		Breed:      input.Breed,
		Age:        input.Age,
		Sterilized: input.Sterilized,
		Sex:        input.Sex,
		TutorID:    input.TutorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

func (s *PatientService) List(ctx context.Context) ([]domain.Patient, error) {
	return s.repo.FindAll(ctx)
}

func (s *PatientService) ListByTutor(ctx context.Context, tutorID int64) ([]domain.Patient, error) {
	if _, err := s.tutors.FindByID(ctx, tutorID); err != nil {
		return nil, err
	}
	return s.repo.FindByTutor(ctx, tutorID)
}

func (s *PatientService) Update(ctx context.Context, id int64, input ports.PatientInput) (*domain.Patient, error) {
	patient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.TutorID != 0 && input.TutorID != patient.TutorID {
		if _, err := s.tutors.FindByID(ctx, input.TutorID); err != nil {
			return nil, err
		}
		patient.TutorID = input.TutorID
	}
	if input.Name != "" {
		patient.Name = input.Name
	}
	if input.Species != "" {
		patient.Species = input.Species
	}
	if input.Breed != "" {
		patient.Breed = input.Breed
	}
	if input.Age != 0 {
		patient.Age = input.Age
	}
	if input.Sex != "" {
		patient.Sex = input.Sex
	}
	patient.Sterilized = input.Sterilized

	patient.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *PatientService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
