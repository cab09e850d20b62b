package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/loanhub/internal/pkg/logger"
	"github.com/piresc/loanhub/internal/pkg/models"
	"github.com/piresc/loanhub/internal/utils"
	"github.com/piresc/loanhub/services/users"
)

// AuthHandler handles the public OTP, registration and login endpoints
type AuthHandler struct {
	userUC users.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC) *AuthHandler {
	return &AuthHandler{
		userUC: userUC,
	}
}

// RequestOTP handles POST /api/auth/request-otp
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req models.OTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.userUC.RequestOTP(c.Request().Context(), req.Email); err != nil {
		return otpError(c, err)
	}

	return utils.MessageResponse(c, http.StatusOK, "OTP sent to your email")
}

// VerifyOTP handles POST /api/auth/verify-otp
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.userUC.VerifyOTP(c.Request().Context(), req.Email, req.OTP); err != nil {
		return otpError(c, err)
	}

	return utils.MessageResponse(c, http.StatusOK, "OTP verified successfully")
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		return otpError(c, err)
	}

	return utils.DataResponse(c, http.StatusCreated, resp)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid credentials")
		}
		return utils.ErrorFromDomain(c, err)
	}

	return utils.DataResponse(c, http.StatusOK, resp)
}

// otpError answers every client-side OTP failure with 400, a missing code included
func otpError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrDeliveryFailed):
		logger.ErrorCtx(c.Request().Context(), "Failed to send OTP", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Error sending OTP", err.Error())
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrConflict),
		errors.Is(err, models.ErrNotFound):
		return utils.BadRequestResponse(c, utils.Message(err))
	default:
		return utils.ErrorFromDomain(c, err)
	}
}
