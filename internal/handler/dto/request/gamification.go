package request

type AwardPointsRequest struct {
	ReceiptID string `json:"receiptId" binding:"required"`
}
