package graphql

import (
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/labstack/echo/v4"

	"github.com/medrec/emr/internal/platform/respond"
)

type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

type Handler struct {
	schema graphql.Schema
}

func NewHandler(svcs Services) (*Handler, error) {
	schema, err := NewSchema(svcs)
	if err != nil {
		return nil, err
	}
	return &Handler{schema: schema}, nil
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/graphql", h.Execute)
}

// Execute runs one GraphQL request. Domain failures surface inside the
// response envelope, not as GraphQL errors; only malformed documents
// populate the errors array.
func (h *Handler) Execute(c echo.Context) error {
	var req request
	if err := c.Bind(&req); err != nil {
		return respond.Err(c, respond.BadRequest(err.Error()))
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        c.Request().Context(),
	})

	return c.JSON(http.StatusOK, result)
}
