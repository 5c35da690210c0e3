package repository

import (
	"context"

	"coupon-ledger/internal/domain/coupon"
	"coupon-ledger/internal/infra"
	sqlc "coupon-ledger/internal/infra/sqlc/generated"
)

type BatchWriteQueries interface {
	CreateBatch(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBatchParams) (sqlc.Batches, error)
}

type BatchRepository struct {
	queries BatchWriteQueries
	db      sqlc.DBTX
}

func NewBatchRepository(queries BatchWriteQueries, db sqlc.DBTX) *BatchRepository {
	return &BatchRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BatchRepository) Create(ctx context.Context, b *coupon.Batch) (int64, error) {
	row, err := r.queries.CreateBatch(ctx, r.db, sqlc.CreateBatchParams{
		Name: b.Name().String(),
		Sku:  b.SKU().String(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create batch", err)
	}
	return row.ID, nil
}
