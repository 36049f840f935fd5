package medical

import (
	"context"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/medrec/emr/internal/domain/patient"
	"github.com/medrec/emr/internal/platform/db"
	"github.com/medrec/emr/internal/platform/respond"
	"github.com/medrec/emr/pkg/pagination"
)

// Conditions shorter than this are ignored as list filters.
const keywordMinLength = 3

// PatientGetter resolves a patient id. Satisfied by patient.Service.
type PatientGetter interface {
	Detail(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
}

type Service struct {
	repo     Repository
	patients PatientGetter
	tx       db.TxRunner
	logger   zerolog.Logger
	created  prometheus.Counter
}

func NewService(repo Repository, patients PatientGetter, tx db.TxRunner, logger zerolog.Logger) *Service {
	return &Service{repo: repo, patients: patients, tx: tx, logger: logger}
}

// SetCreatedCounter wires a metric incremented on every successful create.
func (s *Service) SetCreatedCounter(c prometheus.Counter) {
	s.created = c
}

// Create inserts the medication and/or the medical history in one
// transaction. The patient is resolved inside the transaction scope so a
// missing patient rolls back without leaving either row behind.
func (s *Service) Create(ctx context.Context, input CreateInput) (*CreateResult, error) {
	res := &CreateResult{}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.patients.Detail(ctx, input.PatientID); err != nil {
			return err
		}

		if input.Medication != nil {
			m := &Medication{
				PatientID: input.PatientID,
				Name:      input.Medication.Name,
				Dosage:    input.Medication.Dosage,
				Frequency: input.Medication.Frequency,
			}
			if err := s.repo.CreateMedication(ctx, m); err != nil {
				return err
			}
			res.Medication = m
		}

		if input.History != nil {
			h := &MedicalHistory{
				PatientID:     input.PatientID,
				Condition:     input.History.Condition,
				DiagnosisDate: input.History.DiagnosisDate,
				Status:        input.History.Status,
			}
			if err := s.repo.CreateHistory(ctx, h); err != nil {
				return err
			}
			res.History = h
		}

		return nil
	})
	if err != nil {
		if !respond.IsNotFound(err) {
			s.logger.Error().Err(err).Msg("create medical records failed")
		}
		return nil, err
	}

	if s.created != nil {
		s.created.Inc()
	}
	return res, nil
}

func (s *Service) DetailMedication(ctx context.Context, id uuid.UUID) (*Medication, error) {
	return s.repo.GetMedicationByID(ctx, id)
}

func (s *Service) DetailMedicalHistory(ctx context.Context, id uuid.UUID) (*MedicalHistory, error) {
	return s.repo.GetHistoryByID(ctx, id)
}

// ListMedicalHistory returns one page of a patient's history. The keyword
// filters on condition only when it is longer than two characters.
func (s *Service) ListMedicalHistory(ctx context.Context, params ListParams) (*HistoryList, error) {
	keyword := ""
	if len(params.Keyword) >= keywordMinLength {
		keyword = params.Keyword
	}

	count, err := s.repo.CountHistories(ctx, params.PatientID, keyword)
	if err != nil {
		s.logger.Error().Err(err).Msg("count medical histories failed")
		return nil, err
	}

	p := pagination.New(count, params.Limit, params.Page)

	histories := []MedicalHistory{}
	if count > 0 {
		histories, err = s.repo.ListHistories(ctx, params.PatientID, keyword, p.Limit, p.Offset())
		if err != nil {
			s.logger.Error().Err(err).Msg("list medical histories failed")
			return nil, err
		}
	}

	return &HistoryList{Histories: histories, Paginator: p}, nil
}
