package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/loanhub/internal/pkg/middleware"
	"github.com/piresc/loanhub/internal/pkg/models"
	"github.com/piresc/loanhub/internal/utils"
	"github.com/piresc/loanhub/services/queries"
)

// QueryResponse is returned by the submit and respond endpoints
type QueryResponse struct {
	Message string        `json:"message"`
	Query   *models.Query `json:"query"`
}

// QueryHandler handles HTTP requests for queries
type QueryHandler struct {
	queryUC queries.QueryUC
}

// NewQueryHandler creates a new query handler
func NewQueryHandler(queryUC queries.QueryUC) *QueryHandler {
	return &QueryHandler{
		queryUC: queryUC,
	}
}

// Submit handles POST /api/queries
func (h *QueryHandler) Submit(c echo.Context) error {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "No token provided")
	}

	var req models.SubmitQueryRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	query, err := h.queryUC.Submit(c.Request().Context(), caller, &req)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.DataResponse(c, http.StatusCreated, QueryResponse{
		Message: "Query submitted",
		Query:   query,
	})
}

// ListAll handles GET /api/queries
func (h *QueryHandler) ListAll(c echo.Context) error {
	list, err := h.queryUC.ListAll(c.Request().Context())
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return utils.DataResponse(c, http.StatusOK, list)
}

// Respond handles POST /api/queries/respond/:queryId
func (h *QueryHandler) Respond(c echo.Context) error {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "No token provided")
	}

	queryID, err := uuid.Parse(c.Param("queryId"))
	if err != nil {
		return utils.NotFoundResponse(c, "Query not found")
	}

	var req models.RespondQueryRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	query, err := h.queryUC.Respond(c.Request().Context(), caller, queryID, req.Response)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.DataResponse(c, http.StatusOK, QueryResponse{
		Message: "Response submitted",
		Query:   query,
	})
}
