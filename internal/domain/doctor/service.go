package doctor

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medrec/emr/internal/platform/respond"
)

type Service struct {
	repo   Repository
	logger zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Doctor, error) {
	d := &Doctor{Name: input.Name}
	if err := s.repo.Create(ctx, d); err != nil {
		s.logger.Error().Err(err).Msg("create doctor failed")
		return nil, err
	}
	return d, nil
}

func (s *Service) Detail(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) error {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if input.Name != nil {
		d.Name = *input.Name
	}

	if err := s.repo.Update(ctx, d); err != nil {
		s.logger.Error().Err(err).Str("doctor_id", id.String()).Msg("update doctor failed")
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if !respond.IsNotFound(err) {
			s.logger.Error().Err(err).Str("doctor_id", id.String()).Msg("delete doctor failed")
		}
		return err
	}
	return nil
}
