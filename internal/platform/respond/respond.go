// Package respond implements the uniform response envelope shared by the REST
// and GraphQL surfaces. Every response, success or failure, is
// {meta:{code,success,message}, data}; clients branch on meta.success, not on
// the transport status.
package respond

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Meta carries the outcome of a request.
type Meta struct {
	Code    int    `json:"code"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Envelope wraps a payload with its Meta. Data is null on failure and on
// operations with no payload (update, delete).
type Envelope struct {
	Meta Meta        `json:"meta"`
	Data interface{} `json:"data"`
}

// Success builds a success envelope with code 200.
func Success(data interface{}) Envelope {
	return Envelope{
		Meta: Meta{Code: http.StatusOK, Success: true, Message: "Success"},
		Data: data,
	}
}

// Failure builds a failure envelope with the given code and message.
func Failure(code int, message string) Envelope {
	return Envelope{
		Meta: Meta{Code: code, Success: false, Message: message},
	}
}

// OK writes a success envelope with HTTP 200.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Success(data))
}

// Err writes a failure envelope. The HTTP status and meta.code both carry the
// error's real status: domain NotFound surfaces as 404, validation failures
// as 400, everything else as 500.
func Err(c echo.Context, err error) error {
	code := StatusOf(err)
	return c.JSON(code, Failure(code, err.Error()))
}

// Error is a domain error with an associated HTTP status.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string { return e.Message }

// NotFound reports that a referenced entity does not exist.
func NotFound(message string) *Error {
	return &Error{Code: http.StatusNotFound, Message: message}
}

// BadRequest reports invalid input.
func BadRequest(message string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: message}
}

// Internal reports an unexpected failure.
func Internal(message string) *Error {
	return &Error{Code: http.StatusInternalServerError, Message: message}
}

// IsNotFound reports whether err is (or wraps) a NotFound domain error.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

// StatusOf returns the HTTP status carried by err, or 500 when err carries
// none.
func StatusOf(err error) int {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
