package doctor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medrec/emr/internal/platform/respond"
	"github.com/medrec/emr/internal/platform/validate"
)

func newTestServer(repo *mockRepo) *echo.Echo {
	e := echo.New()
	e.Validator = validate.New()
	NewHandler(newTestService(repo)).RegisterRoutes(e)
	return e
}

func TestHandlerCreate(t *testing.T) {
	e := newTestServer(newMockRepo())

	req := httptest.NewRequest(http.MethodPost, "/doctor", strings.NewReader(`{"name":"Dr. Watson"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var env respond.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	data := env.Data.(map[string]interface{})
	if data["name"] != "Dr. Watson" {
		t.Fatalf("name = %v", data["name"])
	}
}

func TestHandlerCreate_MissingName(t *testing.T) {
	e := newTestServer(newMockRepo())

	req := httptest.NewRequest(http.MethodPost, "/doctor", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestHandlerDetail_NotFound(t *testing.T) {
	e := newTestServer(newMockRepo())

	req := httptest.NewRequest(http.MethodGet, "/doctor/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}

	var env respond.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Meta.Message != "Doctor is not found." {
		t.Fatalf("message = %q", env.Meta.Message)
	}
}

func TestHandlerUpdateAndDelete(t *testing.T) {
	repo := newMockRepo()
	e := newTestServer(repo)

	created, _ := newTestService(repo).Create(context.Background(), CreateInput{Name: "Dr. Watson"})

	req := httptest.NewRequest(http.MethodPut, "/doctor/"+created.ID.String(), strings.NewReader(`{"name":"Dr. Holmes"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if repo.doctors[created.ID].Name != "Dr. Holmes" {
		t.Fatalf("name = %q", repo.doctors[created.ID].Name)
	}

	req = httptest.NewRequest(http.MethodDelete, "/doctor/"+created.ID.String(), nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if len(repo.doctors) != 0 {
		t.Fatalf("expected 0 doctors, got %d", len(repo.doctors))
	}
}
