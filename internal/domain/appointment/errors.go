package appointment

import "github.com/medrec/emr/internal/platform/respond"

var ErrNotFound = respond.NotFound("Appointment is not found.")
