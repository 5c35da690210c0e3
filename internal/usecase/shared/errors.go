package shared

import "coupon-ledger/internal/pkg/errs"

// Store-level outcomes every UnitOfWork implementation must report with these sentinels.
var (
	ErrCouponNotFound       = errs.New("coupon not found")
	ErrTokenCollision       = errs.New("coupon token already exists")
	ErrCouponAlreadyClaimed = errs.New("coupon already claimed")
	ErrUnknownUser          = errs.New("unknown user")
	ErrOTPNotFound          = errs.New("otp not found or expired")
)
