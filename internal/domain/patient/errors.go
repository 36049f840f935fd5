package patient

import "github.com/medrec/emr/internal/platform/respond"

var (
	ErrNotFound        = respond.NotFound("Patient is not found.")
	ErrContactNotFound = respond.NotFound("Contact info is not found.")
)
