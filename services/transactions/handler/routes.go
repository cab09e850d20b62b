package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/loanhub/services/transactions/handler/http"
)

// Handler coordinates the HTTP handlers of the transaction service
type Handler struct {
	transactionHandler *http.TransactionHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(transactionHandler *http.TransactionHandler) *Handler {
	return &Handler{
		transactionHandler: transactionHandler,
	}
}

// RegisterRoutes registers the transaction routes on the authenticated group
func (h *Handler) RegisterRoutes(protected *echo.Group) {
	transactionGroup := protected.Group("/transactions")
	transactionGroup.GET("", h.transactionHandler.ListAll)
	transactionGroup.GET("/user/:userId", h.transactionHandler.ListByUser)
}
