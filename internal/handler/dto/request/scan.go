package request

import (
	"coupon-ledger/internal/usecase/commands"
)

type ScanRequest struct {
	Token    string `json:"token" binding:"required"`
	DeviceID string `json:"deviceId" binding:"max=255"`
	GPS      string `json:"gps" binding:"max=255"`
}

func (r *ScanRequest) ToInput(userID int64) commands.RedeemInput {
	return commands.RedeemInput{
		Token:    r.Token,
		UserID:   userID,
		DeviceID: r.DeviceID,
		Location: r.GPS,
	}
}
