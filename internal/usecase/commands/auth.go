package commands

import (
	"context"
	"log/slog"

	"coupon-ledger/internal/domain/user"
	"coupon-ledger/internal/pkg/config"
	"coupon-ledger/internal/pkg/errs"
	"coupon-ledger/internal/pkg/jwt"
	"coupon-ledger/internal/pkg/metrics"
	"coupon-ledger/internal/pkg/otp"
	"coupon-ledger/internal/usecase/shared"
)

var (
	ErrInvalidPhone    = errs.New("phone number rejected")
	ErrOTPRequired     = errs.New("otp required")
	ErrInvalidOTP      = errs.New("invalid or expired otp")
	ErrTokenGeneration = errs.New("token generation failed")
)

type VerifyOTPResult struct {
	UserID int64
	Token  string
}

type AuthCommands interface {
	RequestOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, code string) (*VerifyOTPResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	otpStore   shared.OTPStore
	jwtService *jwt.Service
	metrics    *metrics.Collector
	cfg        config.OTPConfig
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	otpStore shared.OTPStore,
	jwtService *jwt.Service,
	collector *metrics.Collector,
	cfg config.OTPConfig,
) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		otpStore:   otpStore,
		jwtService: jwtService,
		metrics:    collector,
		cfg:        cfg,
	}
}

// RequestOTP stores a hashed one-time code for the phone. Delivery is out of scope;
// the code is only logged.
func (a *authCommandsImpl) RequestOTP(ctx context.Context, phone string) error {
	p, err := user.NewPhone(phone)
	if err != nil {
		return errs.Mark(err, ErrInvalidPhone)
	}

	code := a.cfg.DevCode
	if code == "" {
		code, err = otp.Generate()
		if err != nil {
			return errs.Mark(err, ErrInternal)
		}
	}

	hash, err := otp.Hash(code)
	if err != nil {
		return errs.Mark(err, ErrInternal)
	}
	if err := a.otpStore.Save(ctx, p.Value(), hash, a.cfg.TTL); err != nil {
		return errs.Mark(err, ErrInternal)
	}

	a.metrics.IncOTPIssued()
	slog.Info("otp issued", "phone", p.Value(), "otp", code)
	return nil
}

func (a *authCommandsImpl) VerifyOTP(ctx context.Context, phone, code string) (*VerifyOTPResult, error) {
	p, err := user.NewPhone(phone)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPhone)
	}
	if code == "" {
		return nil, ErrOTPRequired
	}

	// Taking the hash consumes the code, so a wrong guess burns it too.
	hash, err := a.otpStore.Take(ctx, p.Value())
	if err != nil {
		if errs.Is(err, shared.ErrOTPNotFound) {
			return nil, ErrInvalidOTP
		}
		return nil, errs.Mark(err, ErrInternal)
	}
	if err := otp.Compare(hash, code); err != nil {
		return nil, errs.Mark(err, ErrInvalidOTP)
	}

	var u *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		u, err = tx.Users().GetOrCreateByPhone(ctx, p)
		return err
	})
	if err != nil {
		slog.Error("failed to resolve user by phone", "error", err.Error())
		return nil, errs.Mark(err, ErrInternal)
	}

	token, err := a.jwtService.GenerateToken(u.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	slog.Info("user authenticated", "user_id", u.ID())
	return &VerifyOTPResult{UserID: u.ID(), Token: token}, nil
}
