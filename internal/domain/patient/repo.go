package patient

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Contact info
	CreateContact(ctx context.Context, ci *ContactInfo) error
	GetContactByPatient(ctx context.Context, patientID uuid.UUID) (*ContactInfo, error)
	UpdateContactByPatient(ctx context.Context, patientID uuid.UUID, email, phone *string) error
	DeleteContact(ctx context.Context, id uuid.UUID) error
}
