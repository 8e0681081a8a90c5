package response

import (
	"github.com/jinzhu/copier"

	"stash-backend/internal/catalog"
	"stash-backend/internal/usecase/commands"
)

type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
	UserID   string `json:"userId"`
}

type ReceiptData struct {
	ID       string             `json:"id"`
	Merchant string             `json:"merchant"`
	Amount   float64            `json:"amount"`
	Date     string             `json:"date"`
	Category string             `json:"category"`
	Items    []catalog.LineItem `json:"items,omitempty"`
}

// ProcessReceiptResponse mirrors the envelope the mocked extraction endpoint
// promises: {success, data, message?}.
type ProcessReceiptResponse struct {
	Success bool        `json:"success"`
	Data    ReceiptData `json:"data"`
	Message string      `json:"message,omitempty"`
}

func FromUploadResult(result *commands.UploadResult) UploadResponse {
	var resp UploadResponse
	_ = copier.Copy(&resp, result)
	return resp
}

func FromProcessedReceipt(receipt *commands.ProcessedReceipt) ProcessReceiptResponse {
	var data ReceiptData
	_ = copier.Copy(&data, receipt)
	return ProcessReceiptResponse{
		Success: true,
		Data:    data,
		Message: "Receipt processed successfully",
	}
}
