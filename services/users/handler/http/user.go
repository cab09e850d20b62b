package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/loanhub/internal/pkg/middleware"
	"github.com/piresc/loanhub/internal/utils"
	"github.com/piresc/loanhub/services/users"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	userUC users.UserUC,
) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// Me returns the authenticated caller's profile
func (h *UserHandler) Me(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "No token provided")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), identity.UserID)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.DataResponse(c, http.StatusOK, user)
}

// ListUsers returns every registered user
func (h *UserHandler) ListUsers(c echo.Context) error {
	list, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.DataResponse(c, http.StatusOK, list)
}
