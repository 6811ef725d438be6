package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/vetcare/clinic-api/internal/core/domain"
	"github.com/vetcare/clinic-api/internal/core/ports"
)

// TutorService manages pet owners.
type TutorService struct {
	repo   ports.TutorRepository
	logger zerolog.Logger
}

func NewTutorService(repo ports.TutorRepository, logger zerolog.Logger) *TutorService {
	return &TutorService{repo: repo, logger: logger}
}

func (s *TutorService) Create(ctx context.Context, input ports.TutorInput) (*domain.Tutor, error) {
	if err := s.ensureEmailFree(ctx, input.Email); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Tutor{
		Name:      input.Name,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *TutorService) List(ctx context.Context) ([]domain.Tutor, error) {
	return s.repo.FindAll(ctx)
}

func (s *TutorService) Update(ctx context.Context, id int64, input ports.TutorInput) (*domain.Tutor, error) {
	tutor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != "" && input.Email != tutor.Email {
		if err := s.ensureEmailFree(ctx, input.Email); err != nil {
			return nil, err
		}
		tutor.Email = input.Email
	}
	if input.Name != "" {
		tutor.Name = input.Name
	}
	if input.LastName != "" {
		tutor.LastName = input.LastName
	}
	if input.Phone != "" {
		tutor.Phone = input.Phone
	}
	if input.Address != "" {
		tutor.Address = input.Address
	}

	tutor.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, tutor); err != nil {
		return nil, err
	}
	return tutor, nil
}

func (s *TutorService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *TutorService) ensureEmailFree(ctx context.Context, email string) error {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return domain.ErrTutorEmailTaken
	}
	if errors.Is(err, domain.ErrTutorNotFound) {
		return nil
	}
	return err
}
