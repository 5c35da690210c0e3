package readstore

import (
	"context"

	"coupon-ledger/internal/domain/coupon"
	"coupon-ledger/internal/infra"
	sqlc "coupon-ledger/internal/infra/sqlc/generated"
	"coupon-ledger/internal/pkg/errs"
	"coupon-ledger/internal/pkg/pgconv"
	"coupon-ledger/internal/usecase/shared"
)

type CouponReadQueries interface {
	FindCouponByToken(ctx context.Context, db sqlc.DBTX, token string) (sqlc.Coupons, error)
}

type CouponReadStore struct {
	queries CouponReadQueries
	db      sqlc.DBTX
}

func NewCouponReadStore(queries CouponReadQueries, db sqlc.DBTX) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CouponReadStore) FindByToken(ctx context.Context, token coupon.Token) (*shared.CouponSnapshot, error) {
	row, err := r.queries.FindCouponByToken(ctx, r.db, token.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("coupon not found", err, infra.KindNotFound), shared.ErrCouponNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by token", err)
	}

	return toCouponSnapshotFromRow(row)
}

func toCouponSnapshotFromRow(row sqlc.Coupons) (*shared.CouponSnapshot, error) {
	status, err := coupon.ParseStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("stored coupon status is invalid", err, infra.KindDBFailure)
	}

	return &shared.CouponSnapshot{
		ID:      row.ID,
		Token:   coupon.Token(row.Token),
		BatchID: row.BatchID,
		Points:  coupon.Points(row.Points),
		Status:  status,
	}, nil
}
