package readstore

import (
	"context"

	"coupon-ledger/internal/domain/ledger"
	"coupon-ledger/internal/infra"
	sqlc "coupon-ledger/internal/infra/sqlc/generated"
	"coupon-ledger/internal/pkg/pgconv"
)

type WalletReadQueries interface {
	ListTransactionsByUser(ctx context.Context, db sqlc.DBTX, userID int64) ([]sqlc.Transactions, error)
}

type WalletReadStore struct {
	queries WalletReadQueries
	db      sqlc.DBTX
}

func NewWalletReadStore(queries WalletReadQueries, db sqlc.DBTX) *WalletReadStore {
	return &WalletReadStore{
		queries: queries,
		db:      db,
	}
}

// ListByUser returns the user's transactions newest first. One statement, so the
// result is a single read-committed snapshot.
func (r *WalletReadStore) ListByUser(ctx context.Context, userID int64) ([]*ledger.Transaction, error) {
	rows, err := r.queries.ListTransactionsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions by user", err)
	}

	txs := make([]*ledger.Transaction, 0, len(rows))
	for _, row := range rows {
		t, err := ledger.ParseType(row.Type)
		if err != nil {
			return nil, infra.WrapRepoErr("stored transaction type is invalid", err, infra.KindDBFailure)
		}
		txs = append(txs, ledger.Reconstruct(
			row.ID,
			row.UserID,
			row.Amount,
			t,
			pgconv.Int8PtrFromPgtype(row.ScanID),
			pgconv.TimeFromPgtype(row.CreatedAt),
		))
	}
	return txs, nil
}
