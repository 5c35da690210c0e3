package repository

import (
	"context"

	"coupon-ledger/internal/domain/coupon"
	"coupon-ledger/internal/infra"
	sqlc "coupon-ledger/internal/infra/sqlc/generated"
	"coupon-ledger/internal/pkg/errs"
	"coupon-ledger/internal/pkg/pgconv"
	"coupon-ledger/internal/usecase/shared"
)

type CouponWriteQueries interface {
	InsertCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCouponParams) (sqlc.Coupons, error)
	MarkCouponRedeemed(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type CouponRepository struct {
	queries CouponWriteQueries
	db      sqlc.DBTX
}

func NewCouponRepository(queries CouponWriteQueries, db sqlc.DBTX) *CouponRepository {
	return &CouponRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CouponRepository) Insert(ctx context.Context, c *coupon.Coupon) (int64, error) {
	row, err := r.queries.InsertCoupon(ctx, r.db, sqlc.InsertCouponParams{
		Token:   c.Token().String(),
		BatchID: c.BatchID(),
		Points:  c.Points().Int64(),
	})
	if err != nil {
		// ON CONFLICT DO NOTHING yields no row for a duplicate token
		if pgconv.IsNoRows(err) {
			return 0, errs.Mark(infra.WrapRepoErr("coupon token collision", err, infra.KindDuplicateKey), shared.ErrTokenCollision)
		}
		return 0, infra.WrapRepoErr("failed to insert coupon", err)
	}
	return row.ID, nil
}

func (r *CouponRepository) MarkRedeemed(ctx context.Context, couponID int64) error {
	n, err := r.queries.MarkCouponRedeemed(ctx, r.db, couponID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark coupon redeemed", err)
	}
	if n == 0 {
		return errs.Mark(infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound), shared.ErrCouponNotFound)
	}
	return nil
}
