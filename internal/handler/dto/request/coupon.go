package request

import (
	"coupon-ledger/internal/usecase/commands"
)

type GenerateCouponsRequest struct {
	Count     int    `json:"count" binding:"required,min=1"`
	Points    int64  `json:"points" binding:"required,min=1"`
	BatchName string `json:"batchName" binding:"required,max=255"`
	SKU       string `json:"sku" binding:"required,max=255"`
}

func (r *GenerateCouponsRequest) ToInput() commands.IssueCouponsInput {
	return commands.IssueCouponsInput{
		BatchName: r.BatchName,
		SKU:       r.SKU,
		Count:     r.Count,
		Points:    r.Points,
	}
}
