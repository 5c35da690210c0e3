package queries

import "time"

// WalletView is the read-optimized projection of a user's ledger.
type WalletView struct {
	UserID       int64             `json:"user_id"`
	Balance      int64             `json:"balance"`
	Transactions []TransactionView `json:"transactions"`
}

type TransactionView struct {
	ID        int64     `json:"id"`
	Amount    int64     `json:"amount"`
	Type      string    `json:"type"`
	ScanID    *int64    `json:"scan_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
