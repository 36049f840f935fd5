package medical

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medrec/emr/internal/platform/respond"
	"github.com/medrec/emr/internal/platform/validate"
	"github.com/medrec/emr/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/medic")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/medication/:id", h.DetailMedication)
	g.GET("/history/:id", h.DetailMedicalHistory)
}

func (h *Handler) Create(c echo.Context) error {
	var input CreateInput
	if err := validate.Bind(c, &input); err != nil {
		return respond.Err(c, err)
	}

	res, err := h.svc.Create(c.Request().Context(), input)
	if err != nil {
		return respond.Err(c, err)
	}
	return respond.OK(c, res)
}

func (h *Handler) List(c echo.Context) error {
	patientID, err := uuid.Parse(c.QueryParam("patientId"))
	if err != nil {
		return respond.Err(c, respond.BadRequest("invalid patient id"))
	}

	params := pagination.FromContext(c)
	list, err := h.svc.ListMedicalHistory(c.Request().Context(), ListParams{
		PatientID: patientID,
		Page:      params.Page,
		Limit:     params.Limit,
		Keyword:   params.Keyword,
	})
	if err != nil {
		return respond.Err(c, err)
	}
	return respond.OK(c, list)
}

func (h *Handler) DetailMedication(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respond.Err(c, respond.BadRequest("invalid medication id"))
	}

	m, err := h.svc.DetailMedication(c.Request().Context(), id)
	if err != nil {
		return respond.Err(c, err)
	}
	return respond.OK(c, m)
}

func (h *Handler) DetailMedicalHistory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respond.Err(c, respond.BadRequest("invalid medical history id"))
	}

	hist, err := h.svc.DetailMedicalHistory(c.Request().Context(), id)
	if err != nil {
		return respond.Err(c, err)
	}
	return respond.OK(c, hist)
}
