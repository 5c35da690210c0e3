package shared

import "coupon-ledger/internal/domain/coupon"

// Write-side view of a coupon used by the redemption pre-check.
type CouponSnapshot struct {
	ID      int64
	Token   coupon.Token
	BatchID int64
	Points  coupon.Points
	Status  coupon.Status
}
