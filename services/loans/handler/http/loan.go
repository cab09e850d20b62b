package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/loanhub/internal/pkg/logger"
	"github.com/piresc/loanhub/internal/pkg/middleware"
	"github.com/piresc/loanhub/internal/pkg/models"
	"github.com/piresc/loanhub/internal/utils"
	"github.com/piresc/loanhub/services/loans"
)

// LoanResponse is returned by the apply and decision endpoints
type LoanResponse struct {
	Message string       `json:"message"`
	Loan    *models.Loan `json:"loan"`
}

// LoanHandler handles HTTP requests for loan operations
type LoanHandler struct {
	loanUC loans.LoanUC
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanUC loans.LoanUC) *LoanHandler {
	return &LoanHandler{
		loanUC: loanUC,
	}
}

// Apply handles POST /api/loans/apply
func (h *LoanHandler) Apply(c echo.Context) error {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "No token provided")
	}

	var req models.ApplyLoanRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	loan, err := h.loanUC.Apply(c.Request().Context(), caller, &req)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	middleware.SetLoanID(c, loan.ID.String())
	return utils.DataResponse(c, http.StatusCreated, LoanResponse{
		Message: "Loan application submitted",
		Loan:    loan,
	})
}

// Decide handles POST /api/loans/:loanId/decision
func (h *LoanHandler) Decide(c echo.Context) error {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "No token provided")
	}

	var req models.DecisionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if !req.Status.IsDecision() {
		return utils.BadRequestResponse(c, "Invalid status value")
	}

	loanID, err := uuid.Parse(c.Param("loanId"))
	if err != nil {
		return utils.NotFoundResponse(c, "Loan not found")
	}
	middleware.SetLoanID(c, loanID.String())

	loan, err := h.loanUC.Decide(c.Request().Context(), caller, loanID, req.Status)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) || errors.Is(err, models.ErrValidation) || errors.Is(err, models.ErrConflict) {
			return utils.ErrorFromDomain(c, err)
		}
		logger.ErrorCtx(c.Request().Context(), "Failed to update loan status",
			logger.String("loan_id", loanID.String()),
			logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Error updating loan status", err.Error())
	}

	return utils.DataResponse(c, http.StatusOK, LoanResponse{
		Message: fmt.Sprintf("Loan %s successfully", loan.Status),
		Loan:    loan,
	})
}

// ListPending handles GET /api/loans/pending
func (h *LoanHandler) ListPending(c echo.Context) error {
	list, err := h.loanUC.ListPending(c.Request().Context())
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return utils.DataResponse(c, http.StatusOK, list)
}

// ListAll handles GET /api/loans
func (h *LoanHandler) ListAll(c echo.Context) error {
	list, err := h.loanUC.ListAll(c.Request().Context())
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return utils.DataResponse(c, http.StatusOK, list)
}

// ListByUser handles GET /api/loans/user/:userId
func (h *LoanHandler) ListByUser(c echo.Context) error {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "No token provided")
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	list, err := h.loanUC.ListByUser(c.Request().Context(), caller, userID)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return utils.DataResponse(c, http.StatusOK, list)
}
