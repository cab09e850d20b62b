package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/loanhub/internal/pkg/models"
	"github.com/piresc/loanhub/services/users/mocks"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func testConfig() *models.Config {
	return &models.Config{
		App: models.AppConfig{Name: "loanhub"},
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "loanhub",
		},
		OTP: models.OTPConfig{
			Lifetime:  10 * time.Minute,
			Retention: time.Hour,
		},
		Admin: models.AdminConfig{
			Name:     "Root",
			Email:    "admin@loanhub.test",
			Password: "admin-secret",
		},
	}
}

type (
	mockRepo = mocks.MockUserRepo
	mockGW   = mocks.MockUserGW
)

func setupUserUC(t *testing.T) (*UserUC, *mockRepo, *mockGW) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)

	uc := NewUserUC(mockRepo, mockGW, testConfig())
	uc.now = func() time.Time { return testNow }
	uc.generateCode = func(int) (string, error) { return "482913", nil }
	uc.bcryptCost = bcrypt.MinCost

	return uc, mockRepo, mockGW
}

// memoryRepo is an in-memory users.UserRepo for multi-step flow tests
type memoryRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
	otps  map[string]models.OTP
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		users: make(map[string]*models.User),
		otps:  make(map[string]models.OTP),
	}
}

func (r *memoryRepo) CreateUser(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Email]; ok {
		return models.ErrAlreadyRegistered
	}
	r.users[user.Email] = user
	return nil
}

func (r *memoryRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, models.ErrUserNotFound
}

func (r *memoryRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (r *memoryRepo) ListUsers(ctx context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		list = append(list, u)
	}
	return list, nil
}

func (r *memoryRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[email]
	return ok, nil
}

func (r *memoryRepo) SaveOTP(ctx context.Context, otp *models.OTP, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.otps[otp.Email] = *otp
	return nil
}

func (r *memoryRepo) GetOTP(ctx context.Context, email string) (*models.OTP, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	otp, ok := r.otps[email]
	if !ok {
		return nil, models.ErrOTPNotFound
	}
	return &otp, nil
}

func (r *memoryRepo) DeleteOTP(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.otps, email)
	return nil
}

// outbox records every code the gateway was asked to send
type outbox struct {
	codes map[string]string
	err   error
}

func (o *outbox) SendOTP(ctx context.Context, email, code string, expiresAt time.Time) error {
	if o.err != nil {
		return o.err
	}
	o.codes[email] = code
	return nil
}

// setupFlow wires the usecase to in-memory collaborators and a movable clock
func setupFlow(t *testing.T) (*UserUC, *memoryRepo, *outbox, *time.Time) {
	t.Helper()
	repo := newMemoryRepo()
	box := &outbox{codes: make(map[string]string)}
	now := testNow

	uc := NewUserUC(repo, box, testConfig())
	uc.now = func() time.Time { return now }
	uc.bcryptCost = bcrypt.MinCost

	return uc, repo, box, &now
}

// assertDomainErr checks err against want: nil means success, a models kind is matched
// with errors.Is and anything else by message
func assertDomainErr(t *testing.T, want, err error) {
	t.Helper()
	switch {
	case want == nil:
		assert.NoError(t, err)
	case isKind(want):
		assert.ErrorIs(t, err, want)
	default:
		assert.ErrorContains(t, err, want.Error())
	}
}

func isKind(err error) bool {
	for _, kind := range []error{
		models.ErrUnauthorized, models.ErrInvalidToken, models.ErrForbidden, models.ErrValidation,
		models.ErrNotFound, models.ErrConflict, models.ErrDeliveryFailed,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
