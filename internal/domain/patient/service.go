package patient

import (
	"context"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/medrec/emr/internal/platform/db"
	"github.com/medrec/emr/internal/platform/respond"
)

type Service struct {
	repo    Repository
	tx      db.TxRunner
	logger  zerolog.Logger
	created prometheus.Counter
}

func NewService(repo Repository, tx db.TxRunner, logger zerolog.Logger) *Service {
	return &Service{repo: repo, tx: tx, logger: logger}
}

// SetCreatedCounter wires a metric incremented on every successful create.
func (s *Service) SetCreatedCounter(c prometheus.Counter) {
	s.created = c
}

// Detail fetches a patient by id.
func (s *Service) Detail(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

// ContactDetail fetches the contact info row of a patient.
func (s *Service) ContactDetail(ctx context.Context, patientID uuid.UUID) (*ContactInfo, error) {
	return s.repo.GetContactByPatient(ctx, patientID)
}

// Create inserts the patient and its contact info in one transaction. If the
// contact insert fails the patient insert does not persist.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Patient, error) {
	p := &Patient{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DateOfBirth: input.DateOfBirth,
		Gender:      input.Gender,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, p); err != nil {
			return err
		}

		if input.ContactInfo != nil {
			ci := &ContactInfo{
				PatientID: p.ID,
				Email:     input.ContactInfo.Email,
				Phone:     input.ContactInfo.Phone,
			}
			if err := s.repo.CreateContact(ctx, ci); err != nil {
				return err
			}
			p.ContactInfo = ci
		}
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("create patient failed")
		return nil, err
	}

	if s.created != nil {
		s.created.Inc()
	}
	return p, nil
}

// Update applies a partial patch to the patient and, when contact fields are
// present, to its contact info row. Both updates commit or roll back together.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if input.FirstName != nil {
			p.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			p.LastName = *input.LastName
		}
		if input.DateOfBirth != nil {
			p.DateOfBirth = *input.DateOfBirth
		}
		if input.Gender != nil {
			p.Gender = *input.Gender
		}

		if input.ContactInfo != nil {
			var email, phone *string
			if input.ContactInfo.Email != "" {
				email = &input.ContactInfo.Email
			}
			if input.ContactInfo.Phone != "" {
				phone = &input.ContactInfo.Phone
			}
			if err := s.repo.UpdateContactByPatient(ctx, id, email, phone); err != nil {
				return err
			}
		}

		return s.repo.Update(ctx, p)
	})
	if err != nil {
		if !respond.IsNotFound(err) {
			s.logger.Error().Err(err).Str("patient_id", id.String()).Msg("update patient failed")
		}
		return err
	}
	return nil
}

// Delete removes the patient and its contact info row in one transaction.
// The contact row goes first so neither can outlive the other.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			return err
		}

		ci, err := s.repo.GetContactByPatient(ctx, id)
		if err != nil && !respond.IsNotFound(err) {
			return err
		}
		if ci != nil {
			if err := s.repo.DeleteContact(ctx, ci.ID); err != nil {
				return err
			}
		}

		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		if !respond.IsNotFound(err) {
			s.logger.Error().Err(err).Str("patient_id", id.String()).Msg("delete patient failed")
		}
		return err
	}
	return nil
}
