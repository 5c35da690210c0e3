package repository

import (
	"context"

	"coupon-ledger/internal/domain/ledger"
	"coupon-ledger/internal/infra"
	sqlc "coupon-ledger/internal/infra/sqlc/generated"
	"coupon-ledger/internal/pkg/errs"
	"coupon-ledger/internal/pkg/pgconv"
	"coupon-ledger/internal/usecase/shared"
)

type TransactionWriteQueries interface {
	InsertTransaction(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertTransactionParams) (sqlc.Transactions, error)
}

type TransactionRepository struct {
	queries TransactionWriteQueries
	db      sqlc.DBTX
}

func NewTransactionRepository(queries TransactionWriteQueries, db sqlc.DBTX) *TransactionRepository {
	return &TransactionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TransactionRepository) Append(ctx context.Context, t *ledger.Transaction) (int64, error) {
	row, err := r.queries.InsertTransaction(ctx, r.db, sqlc.InsertTransactionParams{
		UserID: t.UserID(),
		Amount: t.Amount(),
		Type:   t.Type().String(),
		ScanID: pgconv.Int8PtrToPgtype(t.ScanID()),
	})
	if err != nil {
		repoErr := infra.WrapRepoErr("failed to append transaction", err)
		if infra.IsConstraint(repoErr, infra.ConstraintTxUserFK) {
			return 0, errs.Mark(repoErr, shared.ErrUnknownUser)
		}
		return 0, repoErr
	}
	return row.ID, nil
}
