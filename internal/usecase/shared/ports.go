package shared

import (
	"context"
	"time"

	"coupon-ledger/internal/domain/coupon"
)

// RedeemedMarker is an advisory cache of redeemed tokens. It may miss; it must never
// report a token that was not redeemed.
type RedeemedMarker interface {
	IsRedeemed(ctx context.Context, token coupon.Token) (bool, error)
	MarkRedeemed(ctx context.Context, token coupon.Token) error
}

// OTPStore keeps one hashed code per phone until it expires or is taken.
type OTPStore interface {
	Save(ctx context.Context, phone, codeHash string, ttl time.Duration) error
	// Take returns and deletes the hash, or ErrOTPNotFound.
	Take(ctx context.Context, phone string) (string, error)
}

type NopRedeemedMarker struct{}

func (NopRedeemedMarker) IsRedeemed(context.Context, coupon.Token) (bool, error) { return false, nil }
func (NopRedeemedMarker) MarkRedeemed(context.Context, coupon.Token) error       { return nil }
