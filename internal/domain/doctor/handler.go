package doctor

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medrec/emr/internal/platform/respond"
	"github.com/medrec/emr/internal/platform/validate"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/doctor")
	g.POST("", h.Create)
	g.GET("/:id", h.Detail)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	var input CreateInput
	if err := validate.Bind(c, &input); err != nil {
		return respond.Err(c, err)
	}

	d, err := h.svc.Create(c.Request().Context(), input)
	if err != nil {
		return respond.Err(c, err)
	}
	return respond.OK(c, d)
}

func (h *Handler) Detail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respond.Err(c, respond.BadRequest("invalid doctor id"))
	}

	d, err := h.svc.Detail(c.Request().Context(), id)
	if err != nil {
		return respond.Err(c, err)
	}
	return respond.OK(c, d)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respond.Err(c, respond.BadRequest("invalid doctor id"))
	}

	var input UpdateInput
	if err := validate.Bind(c, &input); err != nil {
		return respond.Err(c, err)
	}

	if err := h.svc.Update(c.Request().Context(), id, input); err != nil {
		return respond.Err(c, err)
	}
	return respond.OK(c, nil)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respond.Err(c, respond.BadRequest("invalid doctor id"))
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respond.Err(c, err)
	}
	return respond.OK(c, nil)
}
