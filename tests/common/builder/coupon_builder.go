package builder

import (
	"fmt"
	"time"

	reqdto "coupon-ledger/internal/handler/dto/request"
	"coupon-ledger/internal/usecase/commands"
	"coupon-ledger/internal/usecase/queries"
)

type CouponBatchBuilder struct {
	BatchName string
	SKU       string
	Count     int
	Points    int64
}

func NewCouponBatchBuilder() *CouponBatchBuilder {
	return &CouponBatchBuilder{
		BatchName: "Spring Promo",
		SKU:       "SKU-001",
		Count:     3,
		Points:    100,
	}
}

func (b *CouponBatchBuilder) With(mutate func(*CouponBatchBuilder)) *CouponBatchBuilder {
	mutate(b)
	return b
}

func (b *CouponBatchBuilder) BuildDTO() reqdto.GenerateCouponsRequest {
	return reqdto.GenerateCouponsRequest{
		Count:     b.Count,
		Points:    b.Points,
		BatchName: b.BatchName,
		SKU:       b.SKU,
	}
}

func (b *CouponBatchBuilder) BuildInput() commands.IssueCouponsInput {
	return commands.IssueCouponsInput{
		BatchName: b.BatchName,
		SKU:       b.SKU,
		Count:     b.Count,
		Points:    b.Points,
	}
}

func (b *CouponBatchBuilder) BuildResult(batchID int64) *commands.IssueCouponsResult {
	tokens := make([]string, b.Count)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("token-%d-%d", batchID, i)
	}
	return &commands.IssueCouponsResult{BatchID: batchID, Tokens: tokens}
}

type WalletBuilder struct {
	UserID  int64
	Credits []int64
	Start   time.Time
}

func NewWalletBuilder(userID int64) *WalletBuilder {
	return &WalletBuilder{
		UserID: userID,
		Start:  time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *WalletBuilder) WithCredits(amounts ...int64) *WalletBuilder {
	b.Credits = append(b.Credits, amounts...)
	return b
}

// BuildView lists credits newest first, like the read store does.
func (b *WalletBuilder) BuildView() *queries.WalletView {
	view := &queries.WalletView{
		UserID:       b.UserID,
		Transactions: make([]queries.TransactionView, 0, len(b.Credits)),
	}
	for i := len(b.Credits) - 1; i >= 0; i-- {
		scanID := int64(i + 1)
		view.Balance += b.Credits[i]
		view.Transactions = append(view.Transactions, queries.TransactionView{
			ID:        int64(i + 1),
			Amount:    b.Credits[i],
			Type:      "credit",
			ScanID:    &scanID,
			CreatedAt: b.Start.Add(time.Duration(i) * time.Minute),
		})
	}
	return view
}
