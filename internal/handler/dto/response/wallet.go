package response

import (
	"coupon-ledger/internal/usecase/queries"
)

type WalletResponse struct {
	Balance      int64                  `json:"balance"`
	Transactions []*TransactionResponse `json:"transactions"`
}

type TransactionResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Amount    int64  `json:"amount"`
	Type      string `json:"type"`
	ScanID    *int64 `json:"scanId"`
	CreatedAt string `json:"createdAt"`
}

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

func FromWalletView(v *queries.WalletView) *WalletResponse {
	txs := make([]*TransactionResponse, len(v.Transactions))
	for i, t := range v.Transactions {
		txs[i] = &TransactionResponse{
			ID:        t.ID,
			UserID:    v.UserID,
			Amount:    t.Amount,
			Type:      t.Type,
			ScanID:    t.ScanID,
			CreatedAt: t.CreatedAt.UTC().Format(timestampLayout),
		}
	}
	return &WalletResponse{
		Balance:      v.Balance,
		Transactions: txs,
	}
}
