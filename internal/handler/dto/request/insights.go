package request

type DetectAnomalyRequest struct {
	ReceiptData      string `json:"receiptData" binding:"required"`
	SpendingPatterns string `json:"spendingPatterns"`
}

type ForecastBudgetRequest struct {
	ReceiptHistory   string `json:"receiptHistory"`
	SpendingPatterns string `json:"spendingPatterns"`
}
