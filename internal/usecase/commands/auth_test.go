package commands

import (
	"context"
	"testing"
	"time"

	"coupon-ledger/internal/infra/memstore"
	"coupon-ledger/internal/pkg/clock"
	"coupon-ledger/internal/pkg/config"
	"coupon-ledger/internal/pkg/errs"
	"coupon-ledger/internal/pkg/jwt"
	"coupon-ledger/internal/pkg/otp"
	"coupon-ledger/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	clock    *clock.MockClock
	store    *memstore.Store
	otpStore *memstore.OTPStore
	jwt      *jwt.Service
	auth     AuthCommands
}

func newAuthFixture(t *testing.T, cfg config.OTPConfig) *authFixture {
	t.Helper()
	clk := clock.NewMockClock(testNow)
	store := memstore.New(clk)
	otpStore := memstore.NewOTPStore(clk)
	jwtService := jwt.NewService("test-secret", time.Hour, clk)
	return &authFixture{
		clock:    clk,
		store:    store,
		otpStore: otpStore,
		jwt:      jwtService,
		auth:     NewAuthCommands(store, otpStore, jwtService, nil, cfg),
	}
}

func TestAuth_RequestAndVerify(t *testing.T) {
	f := newAuthFixture(t, config.NewTestConfig().OTP)
	ctx := context.Background()

	require.NoError(t, f.auth.RequestOTP(ctx, "090-1111-2222"))

	res, err := f.auth.VerifyOTP(ctx, "09011112222", "123456")
	require.NoError(t, err)
	assert.Positive(t, res.UserID)

	claims, err := f.jwt.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.UserID, claims.UserID)

	t.Run("success: same phone resolves to same user", func(t *testing.T) {
		require.NoError(t, f.auth.RequestOTP(ctx, "09011112222"))
		again, err := f.auth.VerifyOTP(ctx, "09011112222", "123456")
		require.NoError(t, err)
		assert.Equal(t, res.UserID, again.UserID)
	})

	t.Run("error: code is single use", func(t *testing.T) {
		_, err := f.auth.VerifyOTP(ctx, "09011112222", "123456")
		assert.ErrorIs(t, err, ErrInvalidOTP)
	})
}

func TestAuth_RandomCode(t *testing.T) {
	cfg := config.NewTestConfig().OTP
	cfg.DevCode = ""
	f := newAuthFixture(t, cfg)
	ctx := context.Background()

	require.NoError(t, f.auth.RequestOTP(ctx, "09011112222"))

	hash, err := f.otpStore.Take(ctx, "09011112222")
	require.NoError(t, err)
	assert.ErrorIs(t, otp.Compare(hash, "abcdef"), otp.ErrInvalidCode)
}

func TestAuth_VerifyErrors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *authFixture)
		phone   string
		code    string
		wantErr error
	}{
		{
			name:    "error: invalid phone",
			phone:   "abc",
			code:    "123456",
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "error: missing code",
			phone:   "09011112222",
			code:    "",
			wantErr: ErrOTPRequired,
		},
		{
			name:    "error: no code requested",
			phone:   "09011112222",
			code:    "123456",
			wantErr: ErrInvalidOTP,
		},
		{
			name: "error: wrong code",
			setup: func(f *authFixture) {
				_ = f.auth.RequestOTP(context.Background(), "09011112222")
			},
			phone:   "09011112222",
			code:    "654321",
			wantErr: ErrInvalidOTP,
		},
		{
			name: "error: expired code",
			setup: func(f *authFixture) {
				_ = f.auth.RequestOTP(context.Background(), "09011112222")
				f.clock.Advance(6 * time.Minute)
			},
			phone:   "09011112222",
			code:    "123456",
			wantErr: ErrInvalidOTP,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t, config.NewTestConfig().OTP)
			if tt.setup != nil {
				tt.setup(f)
			}

			res, err := f.auth.VerifyOTP(context.Background(), tt.phone, tt.code)

			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuth_RequestOTPErrors(t *testing.T) {
	t.Run("error: invalid phone", func(t *testing.T) {
		f := newAuthFixture(t, config.NewTestConfig().OTP)
		err := f.auth.RequestOTP(context.Background(), "12")
		assert.ErrorIs(t, err, ErrInvalidPhone)
	})

	t.Run("error: store failure", func(t *testing.T) {
		f := newAuthFixture(t, config.NewTestConfig().OTP)
		auth := NewAuthCommands(f.store, brokenOTPStore{}, f.jwt, nil, config.NewTestConfig().OTP)
		err := auth.RequestOTP(context.Background(), "09011112222")
		assert.ErrorIs(t, err, ErrInternal)
	})
}

type brokenOTPStore struct{}

func (brokenOTPStore) Save(context.Context, string, string, time.Duration) error {
	return errs.New("redis unavailable")
}

func (brokenOTPStore) Take(context.Context, string) (string, error) {
	return "", errs.New("redis unavailable")
}

var _ shared.OTPStore = brokenOTPStore{}
