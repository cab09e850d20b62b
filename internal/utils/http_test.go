package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/loanhub/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestMessageResponse(t *testing.T) {
	c, rec := newContext()

	err := MessageResponse(c, http.StatusOK, "OTP sent to email")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"OTP sent to email"}`, rec.Body.String())
}

func TestDataResponse(t *testing.T) {
	c, rec := newContext()

	err := DataResponse(c, http.StatusOK, []string{"a", "b"})
	require.NoError(t, err)

	assert.JSONEq(t, `["a","b"]`, rec.Body.String())
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name           string
		call           func(c echo.Context) error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "Bad request",
			call:           func(c echo.Context) error { return BadRequestResponse(c, "All fields are required") },
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "All fields are required",
		},
		{
			name:           "Unauthorized default message",
			call:           func(c echo.Context) error { return UnauthorizedResponse(c, "") },
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Unauthorized",
		},
		{
			name:           "Forbidden default message",
			call:           func(c echo.Context) error { return ForbiddenResponse(c, "") },
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "Forbidden",
		},
		{
			name:           "Not found",
			call:           func(c echo.Context) error { return NotFoundResponse(c, "Loan not found") },
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Loan not found",
		},
		{
			name:           "Service unavailable",
			call:           func(c echo.Context) error { return ServiceUnavailableResponse(c, "") },
			expectedStatus: http.StatusServiceUnavailable,
			expectedMsg:    "Service unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, tt.call(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedMsg, body.Message)
			assert.Empty(t, body.Error)
		})
	}
}

func TestInternalServerErrorResponse(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, InternalServerErrorResponse(c, "connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Server error","error":"connection refused"}`, rec.Body.String())
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{nil, http.StatusOK},
		{models.ErrUnauthorized, http.StatusUnauthorized},
		{models.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("%w: bad signature", models.ErrInvalidToken), http.StatusUnauthorized},
		{models.ErrForbidden, http.StatusForbidden},
		{models.ErrInvalidStatus, http.StatusBadRequest},
		{models.ErrOTPExpired, http.StatusBadRequest},
		{models.ErrLoanNotFound, http.StatusNotFound},
		{models.ErrAlreadyRegistered, http.StatusBadRequest},
		{models.ErrDeliveryFailed, http.StatusInternalServerError},
		{errors.New("driver: bad connection"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		name := "nil"
		if tt.err != nil {
			name = tt.err.Error()
		}
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusFromError(tt.err))
		})
	}
}

func TestErrorFromDomain(t *testing.T) {
	t.Run("known kind", func(t *testing.T) {
		c, rec := newContext()

		require.NoError(t, ErrorFromDomain(c, models.ErrLoanNotFound))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"Loan not found"}`, rec.Body.String())
	})

	t.Run("unknown error", func(t *testing.T) {
		c, rec := newContext()

		require.NoError(t, ErrorFromDomain(c, errors.New("failed to get loan: timeout")))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"message":"Server error","error":"failed to get loan: timeout"}`, rec.Body.String())
	})
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Invalid status value", Message(models.ErrInvalidStatus))
	assert.Equal(t, "Access denied", Message(models.ErrAccessDenied))
	assert.Equal(t, "Missing required fields: name", Message(models.ValidationError("missing required fields: name")))
	assert.Equal(t, "Plain", Message(errors.New("plain")))
	assert.Equal(t, "", Message(errors.New("")))
}
