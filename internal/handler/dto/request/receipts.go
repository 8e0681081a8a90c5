package request

type ProcessReceiptRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"`
}
