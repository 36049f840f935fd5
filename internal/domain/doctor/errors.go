package doctor

import "github.com/medrec/emr/internal/platform/respond"

var ErrNotFound = respond.NotFound("Doctor is not found.")
