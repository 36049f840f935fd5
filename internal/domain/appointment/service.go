package appointment

import (
	"context"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/medrec/emr/internal/domain/doctor"
	"github.com/medrec/emr/internal/domain/patient"
	"github.com/medrec/emr/internal/platform/respond"
)

// PatientGetter resolves a patient id. Satisfied by patient.Service.
type PatientGetter interface {
	Detail(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
}

// DoctorGetter resolves a doctor id. Satisfied by doctor.Service.
type DoctorGetter interface {
	Detail(ctx context.Context, id uuid.UUID) (*doctor.Doctor, error)
}

type Service struct {
	repo     Repository
	patients PatientGetter
	doctors  DoctorGetter
	logger   zerolog.Logger
	created  prometheus.Counter
}

func NewService(repo Repository, patients PatientGetter, doctors DoctorGetter, logger zerolog.Logger) *Service {
	return &Service{repo: repo, patients: patients, doctors: doctors, logger: logger}
}

// SetCreatedCounter wires a metric incremented on every successful create.
func (s *Service) SetCreatedCounter(c prometheus.Counter) {
	s.created = c
}

// Create books an appointment. Both the patient and the doctor must resolve
// first; the NotFound error names whichever is missing.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Appointment, error) {
	if _, err := s.patients.Detail(ctx, input.PatientID); err != nil {
		return nil, err
	}
	if _, err := s.doctors.Detail(ctx, input.DoctorID); err != nil {
		return nil, err
	}

	a := &Appointment{
		PatientID: input.PatientID,
		DoctorID:  input.DoctorID,
		Date:      input.Date,
		Reason:    input.Reason,
		Notes:     input.Notes,
		IsAble:    true,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Error().Err(err).Msg("create appointment failed")
		return nil, err
	}

	if s.created != nil {
		s.created.Inc()
	}
	return a, nil
}

// Detail fetches the appointment with its patient and doctor joined.
func (s *Service) Detail(ctx context.Context, id uuid.UUID) (*Detail, error) {
	return s.repo.GetDetailByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if input.Date != nil {
		a.Date = *input.Date
	}
	if input.Reason != nil {
		a.Reason = input.Reason
	}
	if input.Notes != nil {
		a.Notes = input.Notes
	}
	if input.IsAble != nil {
		a.IsAble = *input.IsAble
	}

	if err := s.repo.Update(ctx, a); err != nil {
		if !respond.IsNotFound(err) {
			s.logger.Error().Err(err).Str("appointment_id", id.String()).Msg("update appointment failed")
		}
		return err
	}
	return nil
}
