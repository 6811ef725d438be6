package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vetcare/clinic-api/internal/core/domain"
	"github.com/vetcare/clinic-api/internal/core/ports"
)

// DoctorService manages the staff directory.
type DoctorService struct {
	repo   ports.DoctorRepository
	logger zerolog.Logger
}

func NewDoctorService(repo ports.DoctorRepository, logger zerolog.Logger) *DoctorService {
	return &DoctorService{repo: repo, logger: logger}
}

func (s *DoctorService) Create(ctx context.Context, input ports.DoctorInput) (*domain.Doctor, error) {
	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Doctor{
		Name:      input.Name,
		LastName:  input.LastName,
		Specialty: input.Specialty,
		Email:     input.Email,
		Phone:     input.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *DoctorService) List(ctx context.Context) ([]domain.Doctor, error) {
	return s.repo.FindAll(ctx)
}

func (s *DoctorService) Update(ctx context.Context, id int64, input ports.DoctorInput) (*domain.Doctor, error) {
	doctor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		doctor.Name = input.Name
	}
	if input.LastName != "" {
		doctor.LastName = input.LastName
	}
	if input.Specialty != "" {
		doctor.Specialty = input.Specialty
	}
	if input.Email != "" {
		doctor.Email = input.Email
	}
	if input.Phone != "" {
		doctor.Phone = input.Phone
	}

	doctor.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (s *DoctorService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
