package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/loanhub/services/loans/handler/http"
)

// Handler coordinates the HTTP handlers of the loan service
type Handler struct {
	loanHandler *http.LoanHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(loanHandler *http.LoanHandler) *Handler {
	return &Handler{
		loanHandler: loanHandler,
	}
}

// RegisterRoutes registers the loan routes on the authenticated group
func (h *Handler) RegisterRoutes(protected *echo.Group) {
	loanGroup := protected.Group("/loans")
	loanGroup.GET("", h.loanHandler.ListAll)
	loanGroup.POST("/apply", h.loanHandler.Apply)
	loanGroup.GET("/pending", h.loanHandler.ListPending)
	loanGroup.GET("/user/:userId", h.loanHandler.ListByUser)
	loanGroup.POST("/:loanId/decision", h.loanHandler.Decide)
}
