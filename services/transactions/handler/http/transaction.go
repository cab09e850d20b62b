package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/loanhub/internal/pkg/middleware"
	"github.com/piresc/loanhub/internal/utils"
	"github.com/piresc/loanhub/services/transactions"
)

// TransactionHandler handles HTTP requests for transactions
type TransactionHandler struct {
	transactionUC transactions.TransactionUC
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionUC transactions.TransactionUC) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: transactionUC,
	}
}

// ListAll handles GET /api/transactions
func (h *TransactionHandler) ListAll(c echo.Context) error {
	list, err := h.transactionUC.ListAll(c.Request().Context())
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return utils.DataResponse(c, http.StatusOK, list)
}

// ListByUser handles GET /api/transactions/user/:userId
func (h *TransactionHandler) ListByUser(c echo.Context) error {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "No token provided")
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	list, err := h.transactionUC.ListByUser(c.Request().Context(), caller, userID)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return utils.DataResponse(c, http.StatusOK, list)
}
