package repository

import (
	"context"

	"coupon-ledger/internal/domain/scan"
	"coupon-ledger/internal/infra"
	sqlc "coupon-ledger/internal/infra/sqlc/generated"
	"coupon-ledger/internal/pkg/errs"
	"coupon-ledger/internal/pkg/pgconv"
	"coupon-ledger/internal/usecase/shared"
)

type ScanWriteQueries interface {
	InsertScan(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertScanParams) (sqlc.Scans, error)
}

type ScanRepository struct {
	queries ScanWriteQueries
	db      sqlc.DBTX
}

func NewScanRepository(queries ScanWriteQueries, db sqlc.DBTX) *ScanRepository {
	return &ScanRepository{
		queries: queries,
		db:      db,
	}
}

// Claim relies on scans_coupon_id_key; a second claim for the same coupon fails
// here no matter how many transactions race.
func (r *ScanRepository) Claim(ctx context.Context, s *scan.Scan) (int64, error) {
	row, err := r.queries.InsertScan(ctx, r.db, sqlc.InsertScanParams{
		CouponID: s.CouponID(),
		UserID:   s.UserID(),
		DeviceID: pgconv.StringToPgtype(s.DeviceID()),
		Location: pgconv.StringToPgtype(s.Location()),
	})
	if err == nil {
		return row.ID, nil
	}

	repoErr := infra.WrapRepoErr("failed to insert scan", err)
	switch {
	case infra.IsConstraint(repoErr, infra.ConstraintScanCoupon):
		return 0, errs.Mark(repoErr, shared.ErrCouponAlreadyClaimed)
	case infra.IsConstraint(repoErr, infra.ConstraintScanUserFK):
		return 0, errs.Mark(repoErr, shared.ErrUnknownUser)
	case infra.IsConstraint(repoErr, infra.ConstraintScanCouponFK):
		return 0, errs.Mark(repoErr, shared.ErrCouponNotFound)
	default:
		return 0, repoErr
	}
}
