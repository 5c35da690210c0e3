package shared

import (
	"context"

	"coupon-ledger/internal/domain/coupon"
	"coupon-ledger/internal/domain/ledger"
	"coupon-ledger/internal/domain/scan"
	"coupon-ledger/internal/domain/user"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Batches() BatchRepository
	Coupons() CouponRepository
	Scans() ScanRepository
	Transactions() TransactionRepository
	Users() UserRepository
}

type CommandReads interface {
	CouponByToken(ctx context.Context, token coupon.Token) (*CouponSnapshot, error)
}

type BatchRepository interface {
	Create(ctx context.Context, b *coupon.Batch) (int64, error)
}

type CouponRepository interface {
	// Insert returns ErrTokenCollision when the token is already taken.
	Insert(ctx context.Context, c *coupon.Coupon) (int64, error)
	MarkRedeemed(ctx context.Context, couponID int64) error
}

type ScanRepository interface {
	// Claim returns ErrCouponAlreadyClaimed when a scan for the coupon exists
	// and ErrUnknownUser when the user does not exist.
	Claim(ctx context.Context, s *scan.Scan) (int64, error)
}

type TransactionRepository interface {
	Append(ctx context.Context, t *ledger.Transaction) (int64, error)
}

type UserRepository interface {
	GetOrCreateByPhone(ctx context.Context, phone user.Phone) (*user.User, error)
}
