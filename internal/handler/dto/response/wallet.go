package response

import (
	"time"

	"github.com/jinzhu/copier"

	"stash-backend/internal/catalog"
	"stash-backend/internal/usecase/commands"
	"stash-backend/internal/usecase/queries"
)

type VoucherListResponse struct {
	Vouchers []catalog.Voucher `json:"vouchers"`
	Count    int               `json:"count"`
}

type RedemptionView struct {
	ID             string          `json:"id"`
	VoucherID      string          `json:"voucherId"`
	Voucher        catalog.Voucher `json:"voucher"`
	RedemptionCode string          `json:"redemptionCode"`
	RedeemedAt     time.Time       `json:"redeemedAt"`
	ExpiresAt      time.Time       `json:"expiresAt"`
	Status         string          `json:"status"`
	QRCode         string          `json:"qrCode"`
	WalletPassID   string          `json:"walletPassId,omitempty"`
}

type RedeemResponse struct {
	Success         bool            `json:"success"`
	Error           string          `json:"error,omitempty"`
	Redemption      *RedemptionView `json:"redemption,omitempty"`
	RemainingPoints int             `json:"remainingPoints"`
}

type RedemptionListResponse struct {
	Redemptions []RedemptionView `json:"redemptions"`
	Count       int              `json:"count"`
}

func FromVouchers(vouchers []catalog.Voucher) VoucherListResponse {
	return VoucherListResponse{Vouchers: vouchers, Count: len(vouchers)}
}

func FromRedemptionView(view *queries.RedeemedVoucherView) *RedemptionView {
	if view == nil {
		return nil
	}
	var resp RedemptionView
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromRedemptionViews(views []queries.RedeemedVoucherView) RedemptionListResponse {
	resp := RedemptionListResponse{Redemptions: make([]RedemptionView, 0, len(views))}
	for i := range views {
		resp.Redemptions = append(resp.Redemptions, *FromRedemptionView(&views[i]))
	}
	resp.Count = len(resp.Redemptions)
	return resp
}

func FromRedeemResult(result *commands.RedeemResult) RedeemResponse {
	return RedeemResponse{
		Success:         result.Success,
		Error:           result.Error,
		Redemption:      FromRedemptionView(result.Redemption),
		RemainingPoints: result.RemainingPoints,
	}
}
