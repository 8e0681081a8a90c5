package request

type RedeemVoucherRequest struct {
	VoucherID string `json:"voucherId" binding:"required"`
	// PointsToSpend is the caller's offered balance, judged as-is; an
	// omitted or zero offer cannot cover any voucher.
	PointsToSpend int `json:"pointsToSpend"`
}

type AddToWalletRequest struct {
	RedemptionID string `json:"redemptionId" binding:"required"`
}
