package queries

import (
	"context"

	"coupon-ledger/internal/domain/ledger"
	"coupon-ledger/internal/pkg/errs"
)

var ErrWalletUnavailable = errs.New("wallet unavailable")

type WalletQueries interface {
	GetWallet(ctx context.Context, userID int64) (*WalletView, error)
}

type WalletReadStore interface {
	// ListByUser returns every committed transaction of the user, newest first.
	ListByUser(ctx context.Context, userID int64) ([]*ledger.Transaction, error)
}

type walletQueriesImpl struct {
	readStore WalletReadStore
}

func NewWalletQueries(readStore WalletReadStore) WalletQueries {
	return &walletQueriesImpl{
		readStore: readStore,
	}
}

// GetWallet folds the ledger into a balance. Users without transactions, known or
// not, get a zero balance.
func (q *walletQueriesImpl) GetWallet(ctx context.Context, userID int64) (*WalletView, error) {
	txs, err := q.readStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrWalletUnavailable)
	}

	view := &WalletView{
		UserID:       userID,
		Balance:      ledger.Balance(txs),
		Transactions: make([]TransactionView, 0, len(txs)),
	}
	for _, t := range txs {
		view.Transactions = append(view.Transactions, TransactionView{
			ID:        t.ID(),
			Amount:    t.Amount(),
			Type:      t.Type().String(),
			ScanID:    t.ScanID(),
			CreatedAt: t.CreatedAt(),
		})
	}
	return view, nil
}
