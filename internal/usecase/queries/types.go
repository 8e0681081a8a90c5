package queries

import (
	"time"

	"stash-backend/internal/catalog"
)

// UserProgress is derived per identity from the seeded generator; the same
// user id always yields the same values.
type UserProgress struct {
	Level           int `json:"level"`
	XP              int `json:"xp"`
	XPForNextLevel  int `json:"xpForNextLevel"`
	ScanStreak      int `json:"scanStreak"`
	BudgetStreak    int `json:"budgetStreak"`
	TotalSpent      int `json:"totalSpent"`
	BudgetRemaining int `json:"budgetRemaining"`
	TotalBudget     int `json:"totalBudget"`
}

type DashboardStats struct {
	TotalSpending   int     `json:"totalSpending"`
	BudgetRemaining int     `json:"budgetRemaining"`
	CurrentLevel    int     `json:"currentLevel"`
	ScanStreak      int     `json:"scanStreak"`
	SpendingChange  string  `json:"spendingChange"`
	BudgetProgress  float64 `json:"budgetProgress"`
}

type ReceiptStatus string

const (
	ReceiptNormal  ReceiptStatus = "normal"
	ReceiptAnomaly ReceiptStatus = "anomaly"
)

// GeneratedReceipt is an ephemeral mock receipt; it is regenerated on every
// call and never persisted by this layer.
type GeneratedReceipt struct {
	ID       string             `json:"id"`
	Merchant string             `json:"merchant"`
	Amount   float64            `json:"amount"`
	Date     string             `json:"date"`
	Category string             `json:"category"`
	Status   ReceiptStatus      `json:"status"`
	Items    []catalog.LineItem `json:"items,omitempty"`
}

type BadgeView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsEarned    bool   `json:"isEarned"`
	EarnedDate  string `json:"earnedDate,omitempty"`
}

type NotificationView struct {
	ID        string                       `json:"id"`
	Type      catalog.NotificationType     `json:"type"`
	Title     string                       `json:"title"`
	Message   string                       `json:"message"`
	Timestamp time.Time                    `json:"timestamp"`
	IsRead    bool                         `json:"isRead"`
	Priority  catalog.NotificationPriority `json:"priority"`
}

// Dashboard aggregates everything the landing screen needs in one call.
type Dashboard struct {
	UserProgress   UserProgress       `json:"userProgress"`
	DashboardStats DashboardStats     `json:"dashboardStats"`
	RecentReceipts []GeneratedReceipt `json:"recentReceipts"`
	Levels         []catalog.Level    `json:"levels"`
}

type RedemptionStatus string

const (
	RedemptionActive  RedemptionStatus = "active"
	RedemptionUsed    RedemptionStatus = "used"
	RedemptionExpired RedemptionStatus = "expired"
)

// RedeemedVoucherView is a historical redemption. Status is computed on read
// from the expiry window and a seeded coin flip, never stored.
type RedeemedVoucherView struct {
	ID             string           `json:"id"`
	VoucherID      string           `json:"voucherId"`
	Voucher        catalog.Voucher  `json:"voucher"`
	RedemptionCode string           `json:"redemptionCode"`
	RedeemedAt     time.Time        `json:"redeemedAt"`
	ExpiresAt      time.Time        `json:"expiresAt"`
	Status         RedemptionStatus `json:"status"`
	QRCode         string           `json:"qrCode"`
	WalletPassID   string           `json:"walletPassId,omitempty"`
}

type ReportedReceiptView struct {
	ReceiptID string    `json:"receiptId"`
	Merchant  string    `json:"merchant"`
	Total     string    `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}

type SpendingReport struct {
	Report       string                `json:"report"`
	Receipts     []ReportedReceiptView `json:"receipts"`
	TotalSpent   float64               `json:"totalSpent"`
	ReceiptCount int                   `json:"receiptCount"`
}

type WalletIntegrationStatus struct {
	IsGoogleWalletAvailable bool     `json:"isGoogleWalletAvailable"`
	HasWalletPermission     bool     `json:"hasWalletPermission"`
	WalletAppVersion        string   `json:"walletAppVersion,omitempty"`
	SupportedVoucherTypes   []string `json:"supportedVoucherTypes"`
}
