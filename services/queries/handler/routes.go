package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/loanhub/services/queries/handler/http"
)

// Handler coordinates the HTTP handlers of the query service
type Handler struct {
	queryHandler *http.QueryHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(queryHandler *http.QueryHandler) *Handler {
	return &Handler{
		queryHandler: queryHandler,
	}
}

// RegisterRoutes registers the query routes on the authenticated group
func (h *Handler) RegisterRoutes(protected *echo.Group) {
	queryGroup := protected.Group("/queries")
	queryGroup.POST("", h.queryHandler.Submit)
	queryGroup.GET("", h.queryHandler.ListAll)
	queryGroup.POST("/respond/:queryId", h.queryHandler.Respond)
}
