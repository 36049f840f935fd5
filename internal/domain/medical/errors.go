package medical

import "github.com/medrec/emr/internal/platform/respond"

var (
	ErrMedicationNotFound = respond.NotFound("Medication is not found.")
	ErrHistoryNotFound    = respond.NotFound("Medical history is not found.")
)
