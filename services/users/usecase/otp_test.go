package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/loanhub/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestOTP(t *testing.T) {
	liveOTP := &models.OTP{Email: "jane@example.com", Code: "111111", ExpiresAt: testNow.Add(time.Minute)}
	staleOTP := &models.OTP{Email: "jane@example.com", Code: "111111", ExpiresAt: testNow.Add(-time.Minute)}

	tests := []struct {
		name      string
		email     string
		mockSetup func(repo *mockRepo, gw *mockGW)
		wantErr   error
	}{
		{
			name:  "Success",
			email: " Jane@Example.com ",
			mockSetup: func(repo *mockRepo, gw *mockGW) {
				repo.EXPECT().EmailExists(gomock.Any(), "jane@example.com").Return(false, nil)
				repo.EXPECT().GetOTP(gomock.Any(), "jane@example.com").Return(nil, models.ErrOTPNotFound)
				repo.EXPECT().DeleteOTP(gomock.Any(), "jane@example.com").Return(nil)
				repo.EXPECT().SaveOTP(gomock.Any(), gomock.Any(), 70*time.Minute).
					DoAndReturn(func(_ context.Context, otp *models.OTP, _ time.Duration) error {
						assert.Equal(t, "482913", otp.Code)
						assert.Equal(t, testNow.Add(10*time.Minute), otp.ExpiresAt)
						return nil
					})
				gw.EXPECT().SendOTP(gomock.Any(), "jane@example.com", "482913", testNow.Add(10*time.Minute)).Return(nil)
			},
		},
		{
			name:  "Expired code is replaced",
			email: "jane@example.com",
			mockSetup: func(repo *mockRepo, gw *mockGW) {
				repo.EXPECT().EmailExists(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().GetOTP(gomock.Any(), gomock.Any()).Return(staleOTP, nil)
				repo.EXPECT().DeleteOTP(gomock.Any(), "jane@example.com").Return(nil)
				repo.EXPECT().SaveOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				gw.EXPECT().SendOTP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "Invalid email",
			email:     "not-an-email",
			mockSetup: func(repo *mockRepo, gw *mockGW) {},
			wantErr:   models.ErrValidation,
		},
		{
			name:  "Already registered",
			email: "jane@example.com",
			mockSetup: func(repo *mockRepo, gw *mockGW) {
				repo.EXPECT().EmailExists(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: models.ErrAlreadyRegistered,
		},
		{
			name:  "Code already live",
			email: "jane@example.com",
			mockSetup: func(repo *mockRepo, gw *mockGW) {
				repo.EXPECT().EmailExists(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().GetOTP(gomock.Any(), gomock.Any()).Return(liveOTP, nil)
			},
			wantErr: models.ErrCodeAlreadyLive,
		},
		{
			name:  "Delivery failure deletes the code",
			email: "jane@example.com",
			mockSetup: func(repo *mockRepo, gw *mockGW) {
				repo.EXPECT().EmailExists(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().GetOTP(gomock.Any(), gomock.Any()).Return(nil, models.ErrOTPNotFound)
				repo.EXPECT().DeleteOTP(gomock.Any(), "jane@example.com").Return(nil).Times(2)
				repo.EXPECT().SaveOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				gw.EXPECT().SendOTP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("smtp: 535 authentication failed"))
			},
			wantErr: models.ErrDeliveryFailed,
		},
		{
			name:  "Store failure",
			email: "jane@example.com",
			mockSetup: func(repo *mockRepo, gw *mockGW) {
				repo.EXPECT().EmailExists(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))
			},
			wantErr: errors.New("failed to check email"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, gw := setupUserUC(t)
			tt.mockSetup(repo, gw)

			err := uc.RequestOTP(context.Background(), tt.email)
			assertDomainErr(t, tt.wantErr, err)
		})
	}
}

func TestVerifyOTP(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		mockSetup func(repo *mockRepo)
		wantErr   error
	}{
		{
			name: "Success keeps the code",
			code: "482913",
			mockSetup: func(repo *mockRepo) {
				repo.EXPECT().GetOTP(gomock.Any(), "jane@example.com").
					Return(&models.OTP{Code: "482913", ExpiresAt: testNow.Add(time.Minute)}, nil)
			},
		},
		{
			name: "Not found",
			code: "482913",
			mockSetup: func(repo *mockRepo) {
				repo.EXPECT().GetOTP(gomock.Any(), gomock.Any()).Return(nil, models.ErrOTPNotFound)
			},
			wantErr: models.ErrOTPNotFound,
		},
		{
			name: "Expired even when the code matches",
			code: "482913",
			mockSetup: func(repo *mockRepo) {
				repo.EXPECT().GetOTP(gomock.Any(), gomock.Any()).
					Return(&models.OTP{Code: "482913", ExpiresAt: testNow.Add(-time.Second)}, nil)
				repo.EXPECT().DeleteOTP(gomock.Any(), "jane@example.com").Return(nil)
			},
			wantErr: models.ErrOTPExpired,
		},
		{
			name: "Mismatch",
			code: "000000",
			mockSetup: func(repo *mockRepo) {
				repo.EXPECT().GetOTP(gomock.Any(), gomock.Any()).
					Return(&models.OTP{Code: "482913", ExpiresAt: testNow.Add(time.Minute)}, nil)
			},
			wantErr: models.ErrOTPMismatch,
		},
		{
			name: "Prefix of the code is a mismatch",
			code: "4829",
			mockSetup: func(repo *mockRepo) {
				repo.EXPECT().GetOTP(gomock.Any(), gomock.Any()).
					Return(&models.OTP{Code: "482913", ExpiresAt: testNow.Add(time.Minute)}, nil)
			},
			wantErr: models.ErrOTPMismatch,
		},
		{
			name: "Code longer than issued is a mismatch",
			code: "4829130",
			mockSetup: func(repo *mockRepo) {
				repo.EXPECT().GetOTP(gomock.Any(), gomock.Any()).
					Return(&models.OTP{Code: "482913", ExpiresAt: testNow.Add(time.Minute)}, nil)
			},
			wantErr: models.ErrOTPMismatch,
		},
		{
			name: "Surrounding spaces are ignored",
			code: " 482913 ",
			mockSetup: func(repo *mockRepo) {
				repo.EXPECT().GetOTP(gomock.Any(), gomock.Any()).
					Return(&models.OTP{Code: "482913", ExpiresAt: testNow.Add(time.Minute)}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, _ := setupUserUC(t)
			tt.mockSetup(repo)

			err := uc.VerifyOTP(context.Background(), "jane@example.com", tt.code)
			assertDomainErr(t, tt.wantErr, err)
		})
	}
}

func TestOTPFlow_SecondRequestWhileLiveConflicts(t *testing.T) {
	uc, _, box, now := setupFlow(t)
	ctx := context.Background()

	require.NoError(t, uc.RequestOTP(ctx, "jane@example.com"))
	first := box.codes["jane@example.com"]

	for _, offset := range []time.Duration{time.Second, 5 * time.Minute, 10 * time.Minute} {
		*now = testNow.Add(offset)
		err := uc.RequestOTP(ctx, "jane@example.com")
		assert.ErrorIs(t, err, models.ErrCodeAlreadyLive, "offset %s", offset)
		assert.ErrorIs(t, err, models.ErrConflict)
	}
	assert.Equal(t, first, box.codes["jane@example.com"])

	// once the first code has lapsed a new one can be issued
	*now = testNow.Add(10*time.Minute + time.Second)
	assert.NoError(t, uc.RequestOTP(ctx, "jane@example.com"))
}

func TestOTPFlow_ExpiredAlwaysFails(t *testing.T) {
	uc, repo, box, now := setupFlow(t)
	ctx := context.Background()

	require.NoError(t, uc.RequestOTP(ctx, "jane@example.com"))
	code := box.codes["jane@example.com"]

	*now = testNow.Add(10*time.Minute + time.Millisecond)
	assert.ErrorIs(t, uc.VerifyOTP(ctx, "jane@example.com", code), models.ErrOTPExpired)

	// the stale record was removed
	_, err := repo.GetOTP(ctx, "jane@example.com")
	assert.ErrorIs(t, err, models.ErrOTPNotFound)
}

func TestOTPFlow_DeliveryFailureAllowsRetry(t *testing.T) {
	uc, _, box, _ := setupFlow(t)
	ctx := context.Background()

	box.err = errors.New("relay down")
	assert.ErrorIs(t, uc.RequestOTP(ctx, "jane@example.com"), models.ErrDeliveryFailed)

	box.err = nil
	assert.NoError(t, uc.RequestOTP(ctx, "jane@example.com"))
}

func TestRequestOTP_AlwaysSixDigits(t *testing.T) {
	uc, repo, gw := setupUserUC(t)

	var requested int
	uc.generateCode = func(digits int) (string, error) {
		requested = digits
		return generateNumericCode(digits)
	}

	repo.EXPECT().EmailExists(gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().GetOTP(gomock.Any(), gomock.Any()).Return(nil, models.ErrOTPNotFound)
	repo.EXPECT().DeleteOTP(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().SaveOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().SendOTP(gomock.Any(), "jane@example.com", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, code string, _ time.Time) error {
			assert.Regexp(t, `^[0-9]{6}$`, code)
			return nil
		})

	require.NoError(t, uc.RequestOTP(context.Background(), "jane@example.com"))
	assert.Equal(t, 6, requested)
}

func TestGenerateNumericCode(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9]{6}$`)
	for i := 0; i < 200; i++ {
		code, err := generateNumericCode(6)
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
	}
}

func TestNormalizeEmail(t *testing.T) {
	got, err := normalizeEmail("  JANE@example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", got)

	for _, bad := range []string{"", "   ", "jane", "Jane <jane@example.com>", "jane@"} {
		_, err := normalizeEmail(bad)
		assert.ErrorIs(t, err, models.ErrValidation, bad)
	}
}
