package commands

import "coupon-ledger/internal/pkg/errs"

var (
	ErrValidation            = errs.New("validation failed")
	ErrCouponNotFound        = errs.New("coupon does not exist")
	ErrAlreadyRedeemed       = errs.New("coupon already redeemed")
	ErrRedemptionConflict    = errs.New("coupon redeemed by a concurrent request")
	ErrUnauthorized          = errs.New("unauthorized")
	ErrInternal              = errs.New("internal error")
	ErrTokenGenerationFailed = errs.New("coupon token generation failed")
)
