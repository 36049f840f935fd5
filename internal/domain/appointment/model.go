package appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/medrec/emr/internal/domain/doctor"
	"github.com/medrec/emr/internal/domain/patient"
)

// Appointment maps to the appointments table. IsAble marks the slot as
// valid; it defaults to true on create.
type Appointment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PatientID uuid.UUID `db:"patient_id" json:"patientId"`
	DoctorID  uuid.UUID `db:"doctor_id" json:"doctorId"`
	Date      string    `db:"date" json:"date"`
	Reason    *string   `db:"reason" json:"reason"`
	Notes     *string   `db:"notes" json:"notes"`
	IsAble    bool      `db:"is_able" json:"isAble"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Detail is an appointment with its patient and doctor joined in.
type Detail struct {
	Appointment
	Patient *patient.Patient `json:"patient"`
	Doctor  *doctor.Doctor   `json:"doctor"`
}

// CreateInput is the payload for booking an appointment. Both referenced
// records must exist.
type CreateInput struct {
	PatientID uuid.UUID `json:"patientId" validate:"required"`
	DoctorID  uuid.UUID `json:"doctorId" validate:"required"`
	Date      string    `json:"date" validate:"required"`
	Reason    *string   `json:"reason" validate:"omitempty"`
	Notes     *string   `json:"notes" validate:"omitempty"`
}

// UpdateInput is a partial patch; nil fields are left unchanged.
type UpdateInput struct {
	Date   *string `json:"date" validate:"omitempty"`
	Reason *string `json:"reason" validate:"omitempty"`
	Notes  *string `json:"notes" validate:"omitempty"`
	IsAble *bool   `json:"isAble" validate:"omitempty"`
}
