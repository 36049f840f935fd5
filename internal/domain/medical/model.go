package medical

import (
	"time"

	"github.com/google/uuid"

	"github.com/medrec/emr/pkg/pagination"
)

// Status values of a medical history entry.
const (
	StatusActive = "ACTIVE"
	StatusDone   = "DONE"
)

// Medication maps to the medications table.
type Medication struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PatientID uuid.UUID `db:"patient_id" json:"patientId"`
	Name      string    `db:"name" json:"name"`
	Dosage    string    `db:"dosage" json:"dosage"`
	Frequency string    `db:"frequency" json:"frequency"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// MedicalHistory maps to the medical_histories table.
type MedicalHistory struct {
	ID            uuid.UUID `db:"id" json:"id"`
	PatientID     uuid.UUID `db:"patient_id" json:"patientId"`
	Condition     string    `db:"condition" json:"condition"`
	DiagnosisDate string    `db:"diagnosis_date" json:"diagnosisDate"`
	Status        string    `db:"status" json:"status"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// MedicationInput carries the medication fields of a create payload. The
// patient id is stamped on by the service.
type MedicationInput struct {
	Name      string `json:"name" validate:"required"`
	Dosage    string `json:"dosage" validate:"required"`
	Frequency string `json:"frequency" validate:"required"`
}

// HistoryInput carries the medical history fields of a create payload.
type HistoryInput struct {
	Condition     string `json:"condition" validate:"required"`
	DiagnosisDate string `json:"diagnosisDate" validate:"required"`
	Status        string `json:"status" validate:"required,oneof=ACTIVE DONE"`
}

// CreateInput creates a medication and/or a medical history for one patient
// as a single unit.
type CreateInput struct {
	PatientID  uuid.UUID        `json:"patientId" validate:"required"`
	Medication *MedicationInput `json:"medication" validate:"omitempty"`
	History    *HistoryInput    `json:"history" validate:"omitempty"`
}

// CreateResult echoes back whichever rows were inserted.
type CreateResult struct {
	Medication *Medication     `json:"medication"`
	History    *MedicalHistory `json:"history"`
}

// ListParams filters and paginates a patient's medical history.
type ListParams struct {
	PatientID uuid.UUID
	Page      int
	Limit     int
	Keyword   string
}

// HistoryList is one page of a patient's medical history.
type HistoryList struct {
	Histories []MedicalHistory     `json:"histories"`
	Paginator pagination.Paginator `json:"paginator"`
}
