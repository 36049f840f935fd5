// Package validate wires go-playground/validator as echo's request
// validator. DTOs declare their field constraints with `validate` tags and
// handlers reject invalid payloads with 400 before any service runs.
package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/medrec/emr/internal/platform/respond"
)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Constraint violations are reported as
// a single BadRequest error listing the failing fields.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return respond.BadRequest(err.Error())
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return respond.BadRequest("validation failed: " + strings.Join(fields, ", "))
}

// Bind decodes the request body into dst and validates it.
func Bind(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		return respond.BadRequest(err.Error())
	}
	return c.Validate(dst)
}
