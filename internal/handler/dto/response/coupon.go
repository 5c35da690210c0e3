package response

import (
	"coupon-ledger/internal/usecase/commands"
)

type GenerateCouponsResponse struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	BatchID int64    `json:"batchId"`
	Tokens  []string `json:"tokens"`
}

func FromIssueResult(r *commands.IssueCouponsResult) *GenerateCouponsResponse {
	return &GenerateCouponsResponse{
		Success: true,
		Count:   len(r.Tokens),
		BatchID: r.BatchID,
		Tokens:  r.Tokens,
	}
}

type ScanResponse struct {
	Success bool  `json:"success"`
	Points  int64 `json:"points"`
}

func FromRedeemResult(r *commands.RedeemResult) *ScanResponse {
	return &ScanResponse{
		Success: true,
		Points:  r.PointsCredited,
	}
}
