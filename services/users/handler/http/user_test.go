package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/loanhub/internal/pkg/middleware"
	"github.com/piresc/loanhub/internal/pkg/models"
	"github.com/piresc/loanhub/services/users/mocks"
	"github.com/stretchr/testify/assert"
)

func TestUserHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUserUC := mocks.NewMockUserUC(ctrl)
	handler := NewUserHandler(mockUserUC)

	userID := uuid.New()
	mockUserUC.EXPECT().GetUser(gomock.Any(), userID).
		Return(&models.User{ID: userID, Name: "Jane", PasswordHash: "secret-hash", Role: models.RoleCustomer}, nil)

	c, recorder := newJSONContext(http.MethodGet, "")
	middleware.WithIdentity(c, models.Identity{UserID: userID, Role: models.RoleCustomer})

	assert.NoError(t, handler.Me(c))
	assert.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, "Jane", body["name"])
	assert.NotContains(t, body, "passwordHash")
	assert.NotContains(t, recorder.Body.String(), "secret-hash")
}

func TestUserHandler_Me_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUserUC := mocks.NewMockUserUC(ctrl)
	handler := NewUserHandler(mockUserUC)

	// no identity attached
	c, recorder := newJSONContext(http.MethodGet, "")
	assert.NoError(t, handler.Me(c))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// token for a deleted user
	mockUserUC.EXPECT().GetUser(gomock.Any(), gomock.Any()).Return(nil, models.ErrUserNotFound)
	c, recorder = newJSONContext(http.MethodGet, "")
	middleware.WithIdentity(c, models.Identity{UserID: uuid.New(), Role: models.RoleCustomer})
	assert.NoError(t, handler.Me(c))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "User not found", decodeBody(t, recorder)["message"])
}

func TestUserHandler_ListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUserUC := mocks.NewMockUserUC(ctrl)
	handler := NewUserHandler(mockUserUC)

	mockUserUC.EXPECT().ListUsers(gomock.Any()).Return([]*models.User{{Name: "a"}, {Name: "b"}}, nil)
	c, recorder := newJSONContext(http.MethodGet, "")
	assert.NoError(t, handler.ListUsers(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"name":"b"`)

	mockUserUC.EXPECT().ListUsers(gomock.Any()).Return(nil, errors.New("failed to list users: db down"))
	c, recorder = newJSONContext(http.MethodGet, "")
	assert.NoError(t, handler.ListUsers(c))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "Server error", decodeBody(t, recorder)["message"])
}
