package patient

import (
	"time"

	"github.com/google/uuid"
)

// Gender values accepted for a patient record.
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
)

// Patient maps to the patients table.
type Patient struct {
	ID          uuid.UUID `db:"id" json:"id"`
	FirstName   string    `db:"first_name" json:"firstName"`
	LastName    string    `db:"last_name" json:"lastName"`
	DateOfBirth string    `db:"date_of_birth" json:"dateOfBirth"`
	Gender      string    `db:"gender" json:"gender"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`

	// ContactInfo is attached on create and on contact-aware reads; the
	// row lives in contact_infos and never outlives its patient.
	ContactInfo *ContactInfo `json:"contactInfo,omitempty"`
}

// ContactInfo maps to the contact_infos table. One row per patient.
type ContactInfo struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PatientID uuid.UUID `db:"patient_id" json:"patientId"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// ContactInfoInput carries the contact fields of a create or update payload.
type ContactInfoInput struct {
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty"`
}

// CreateInput is the payload for creating a patient with its contact info.
type CreateInput struct {
	FirstName   string            `json:"firstName" validate:"required"`
	LastName    string            `json:"lastName" validate:"required"`
	DateOfBirth string            `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Gender      string            `json:"gender" validate:"required,oneof=MALE FEMALE"`
	ContactInfo *ContactInfoInput `json:"contactInfo" validate:"omitempty"`
}

// UpdateInput is a partial patch; nil fields are left unchanged.
type UpdateInput struct {
	FirstName   *string           `json:"firstName" validate:"omitempty"`
	LastName    *string           `json:"lastName" validate:"omitempty"`
	DateOfBirth *string           `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Gender      *string           `json:"gender" validate:"omitempty,oneof=MALE FEMALE"`
	ContactInfo *ContactInfoInput `json:"contactInfo" validate:"omitempty"`
}
