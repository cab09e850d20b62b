package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/loanhub/internal/pkg/models"
	"github.com/piresc/loanhub/services/users/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	request := httptest.NewRequest(method, "/", strings.NewReader(body))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	return e.NewContext(request, recorder), recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestNewAuthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUserUC := mocks.NewMockUserUC(ctrl)

	handler := NewAuthHandler(mockUserUC)
	assert.NotNil(t, handler)
	assert.Equal(t, mockUserUC, handler.userUC)
}

func TestAuthHandler_RequestOTP(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		mockSetup   func(uc *mocks.MockUserUC)
		wantStatus  int
		wantMessage string
	}{
		{
			name: "Success",
			body: `{"email":"jane@example.com"}`,
			mockSetup: func(uc *mocks.MockUserUC) {
				uc.EXPECT().RequestOTP(gomock.Any(), "jane@example.com").Return(nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "OTP sent to your email",
		},
		{
			name: "Already registered",
			body: `{"email":"jane@example.com"}`,
			mockSetup: func(uc *mocks.MockUserUC) {
				uc.EXPECT().RequestOTP(gomock.Any(), gomock.Any()).Return(models.ErrAlreadyRegistered)
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Email is already registered",
		},
		{
			name: "Code already live",
			body: `{"email":"jane@example.com"}`,
			mockSetup: func(uc *mocks.MockUserUC) {
				uc.EXPECT().RequestOTP(gomock.Any(), gomock.Any()).Return(models.ErrCodeAlreadyLive)
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "An OTP has already been sent to this email",
		},
		{
			name: "Delivery failed",
			body: `{"email":"jane@example.com"}`,
			mockSetup: func(uc *mocks.MockUserUC) {
				uc.EXPECT().RequestOTP(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("%w: relay down", models.ErrDeliveryFailed))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Error sending OTP",
		},
		{
			name:        "Invalid payload",
			body:        `{"email":`,
			mockSetup:   func(uc *mocks.MockUserUC) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request payload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUserUC := mocks.NewMockUserUC(ctrl)
			tt.mockSetup(mockUserUC)

			c, recorder := newJSONContext(http.MethodPost, tt.body)
			err := NewAuthHandler(mockUserUC).RequestOTP(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantMessage, decodeBody(t, recorder)["message"])
		})
	}
}

func TestAuthHandler_VerifyOTP(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
	}{
		{"Success", nil, http.StatusOK},
		{"Not found is a bad request", models.ErrOTPNotFound, http.StatusBadRequest},
		{"Expired", models.ErrOTPExpired, http.StatusBadRequest},
		{"Mismatch", models.ErrOTPMismatch, http.StatusBadRequest},
		{"Store failure", errors.New("failed to get OTP: timeout"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUserUC := mocks.NewMockUserUC(ctrl)
			mockUserUC.EXPECT().VerifyOTP(gomock.Any(), "jane@example.com", "482913").Return(tt.ucErr)

			c, recorder := newJSONContext(http.MethodPost, `{"email":"jane@example.com","otp":"482913"}`)
			err := NewAuthHandler(mockUserUC).VerifyOTP(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestAuthHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUserUC := mocks.NewMockUserUC(ctrl)

	userID := uuid.New()
	mockUserUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.RegisterRequest) (*models.AuthResponse, error) {
			assert.Equal(t, models.RoleBusiness, req.Role)
			assert.Equal(t, "retail", req.BusinessCategory)
			return &models.AuthResponse{
				Token: "signed.jwt.token",
				User:  models.PublicUser{ID: userID, Name: "Shop", Email: "shop@example.com", Role: models.RoleBusiness},
			}, nil
		})

	body := `{"name":"Shop","email":"shop@example.com","password":"pw","role":"business",
		"address":"1 Main St","pincode":"560001","mobileNumber":"999","businessCategory":"retail","otp":"482913"}`
	c, recorder := newJSONContext(http.MethodPost, body)

	err := NewAuthHandler(mockUserUC).Register(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, recorder.Code)

	resp := decodeBody(t, recorder)
	assert.Equal(t, "signed.jwt.token", resp["token"])
	user := resp["user"].(map[string]interface{})
	assert.Equal(t, userID.String(), user["id"])
	assert.Equal(t, "business", user["role"])
}

func TestAuthHandler_Register_Errors(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
	}{
		{"Validation", models.ValidationError("missing required fields: name"), http.StatusBadRequest},
		{"Code consumed", models.ErrOTPNotFound, http.StatusBadRequest},
		{"Duplicate email", models.ErrAlreadyRegistered, http.StatusBadRequest},
		{"Store failure", errors.New("failed to create user: reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUserUC := mocks.NewMockUserUC(ctrl)
			mockUserUC.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, tt.ucErr)

			c, recorder := newJSONContext(http.MethodPost, `{"email":"jane@example.com"}`)
			err := NewAuthHandler(mockUserUC).Register(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUserUC := mocks.NewMockUserUC(ctrl)
	handler := NewAuthHandler(mockUserUC)

	mockUserUC.EXPECT().
		Login(gomock.Any(), &models.LoginRequest{Email: "eve@example.com", Password: "pw"}).
		Return(&models.AuthResponse{Token: "t", User: models.PublicUser{Role: models.RoleEmployee}}, nil)

	c, recorder := newJSONContext(http.MethodPost, `{"email":"eve@example.com","password":"pw"}`)
	assert.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "t", decodeBody(t, recorder)["token"])

	mockUserUC.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, models.ErrInvalidCredentials)

	c, recorder = newJSONContext(http.MethodPost, `{"email":"eve@example.com","password":"bad"}`)
	assert.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, recorder)["message"])
}
