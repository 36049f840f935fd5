package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestOK_EnvelopeShape(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := OK(c, map[string]string{"name": "value"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if env.Meta.Code != 200 || !env.Meta.Success || env.Meta.Message != "Success" {
		t.Errorf("unexpected meta: %+v", env.Meta)
	}
	if env.Data == nil {
		t.Error("expected data to be set")
	}
}

func TestErr_PreservesNotFoundStatus(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Err(c, NotFound("Patient is not found.")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}

	var env Envelope
	json.Unmarshal(rec.Body.Bytes(), &env)
	if env.Meta.Code != 404 || env.Meta.Success {
		t.Errorf("unexpected meta: %+v", env.Meta)
	}
	if env.Meta.Message != "Patient is not found." {
		t.Errorf("unexpected message: %q", env.Meta.Message)
	}
	if env.Data != nil {
		t.Error("expected null data on failure")
	}
}

func TestErr_UnknownErrorIs500(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	Err(c, fmt.Errorf("connection refused"))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFound("missing"), 404},
		{BadRequest("bad"), 400},
		{Internal("boom"), 500},
		{fmt.Errorf("wrapped: %w", NotFound("missing")), 404},
		{echo.NewHTTPError(http.StatusBadRequest, "bind"), 400},
		{fmt.Errorf("plain"), 500},
	}
	for _, tc := range cases {
		if got := StatusOf(tc.err); got != tc.want {
			t.Errorf("StatusOf(%v): expected %d, got %d", tc.err, tc.want, got)
		}
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(NotFound("x")) {
		t.Error("expected IsNotFound true for NotFound error")
	}
	if IsNotFound(fmt.Errorf("other")) {
		t.Error("expected IsNotFound false for plain error")
	}
}
