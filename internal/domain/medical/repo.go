package medical

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists medications and medical histories. The keyword
// argument, when non-empty, restricts histories to those whose condition
// contains it case-insensitively; the length threshold is the service's
// concern.
type Repository interface {
	CreateMedication(ctx context.Context, m *Medication) error
	GetMedicationByID(ctx context.Context, id uuid.UUID) (*Medication, error)

	CreateHistory(ctx context.Context, h *MedicalHistory) error
	GetHistoryByID(ctx context.Context, id uuid.UUID) (*MedicalHistory, error)
	CountHistories(ctx context.Context, patientID uuid.UUID, keyword string) (int, error)
	ListHistories(ctx context.Context, patientID uuid.UUID, keyword string, limit, offset int) ([]MedicalHistory, error)
}
