package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/loanhub/internal/pkg/database"
	"github.com/piresc/loanhub/internal/pkg/models"
)

var userRowColumns = []string{
	"id", "name", "email", "password_hash", "role", "address", "pincode",
	"mobile_number", "business_category", "employee_role", "created_at",
}

func setupUserRepoTest(t *testing.T) (*UserRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &UserRepo{
		db:          sqlxDB,
		redisClient: &database.RedisClient{},
		cfg:         &models.Config{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func sampleUser() *models.User {
	return &models.User{
		ID:           uuid.New(),
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         models.RoleCustomer,
		Address:      "1 Main St",
		Pincode:      "560001",
		MobileNumber: "9999999999",
		CreatedAt:    time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func userRow(u *models.User) *sqlmock.Rows {
	return sqlmock.NewRows(userRowColumns).AddRow(
		u.ID.String(), u.Name, u.Email, u.PasswordHash, string(u.Role), u.Address, u.Pincode,
		u.MobileNumber, u.BusinessCategory, u.EmployeeRole, u.CreatedAt,
	)
}

func TestCreateUser(t *testing.T) {
	testCases := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO users").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "Duplicate email",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO users").
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
			},
			wantErr: models.ErrAlreadyRegistered,
		},
		{
			name: "Database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO users").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: errors.New("failed to insert user"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			err := repo.CreateUser(context.Background(), sampleUser())

			switch {
			case tc.wantErr == nil:
				assert.NoError(t, err)
			case errors.Is(tc.wantErr, models.ErrConflict):
				assert.ErrorIs(t, err, tc.wantErr)
			default:
				assert.ErrorContains(t, err, tc.wantErr.Error())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetUserByEmail(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	user := sampleUser()
	mock.ExpectQuery("^SELECT (.+) FROM users WHERE email = \\$1").
		WithArgs(user.Email).
		WillReturnRows(userRow(user))

	got, err := repo.GetUserByEmail(context.Background(), user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.PasswordHash, got.PasswordHash)
	assert.Equal(t, models.RoleCustomer, got.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT (.+) FROM users WHERE email = \\$1").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.GetUserByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestGetUserByID(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	user := sampleUser()
	user.Role = models.RoleBusiness
	user.BusinessCategory = "retail"

	mock.ExpectQuery("^SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs(user.ID).
		WillReturnRows(userRow(user))

	got, err := repo.GetUserByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "retail", got.BusinessCategory)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByID_DatabaseError(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT (.+) FROM users WHERE id = \\$1").
		WillReturnError(errors.New("timeout"))

	_, err := repo.GetUserByID(context.Background(), uuid.New())
	assert.ErrorContains(t, err, "failed to get user")
	assert.NotErrorIs(t, err, models.ErrNotFound)
}

func TestListUsers(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	a, b := sampleUser(), sampleUser()
	b.Email = "john@example.com"

	rows := userRow(a).AddRow(
		b.ID.String(), b.Name, b.Email, b.PasswordHash, string(b.Role), b.Address, b.Pincode,
		b.MobileNumber, b.BusinessCategory, b.EmployeeRole, b.CreatedAt,
	)
	mock.ExpectQuery("^SELECT (.+) FROM users ORDER BY created_at DESC").WillReturnRows(rows)

	got, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "john@example.com", got[1].Email)
}

func TestListUsers_Empty(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT (.+) FROM users").WillReturnRows(sqlmock.NewRows(userRowColumns))

	got, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEmailExists(t *testing.T) {
	for _, exists := range []bool{true, false} {
		repo, mock, cleanup := setupUserRepoTest(t)

		mock.ExpectQuery("^SELECT EXISTS").
			WithArgs("jane@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(exists))

		got, err := repo.EmailExists(context.Background(), "jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, exists, got)
		cleanup()
	}
}
