// Package userstore persists the per-user accumulated record (scanned
// receipts, spending totals, gamification counters, preferences) as a single
// JSONB document per user. Writers read-modify-write the whole document with
// no locking; concurrent writers can overwrite each other, which is an
// accepted limitation of this layer, not a guarantee.
package userstore

import (
	"context"
	"time"
)

// StoredReceipt is a receipt the user actually scanned, as opposed to the
// ephemeral generated ones.
type StoredReceipt struct {
	ID       string  `json:"id"`
	Merchant string  `json:"merchant"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Category string  `json:"category"`
}

type Spending struct {
	TotalSpent      float64            `json:"totalSpent"`
	Categories      map[string]float64 `json:"categories"`
	MonthlySpending map[string]float64 `json:"monthlySpending"`
}

type Gamification struct {
	Points int      `json:"points"`
	Level  int      `json:"level"`
	Badges []string `json:"badges"`
	Streak int      `json:"streak"`
}

type Preferences struct {
	BudgetGoal    int    `json:"budgetGoal"`
	Currency      string `json:"currency"`
	Notifications bool   `json:"notifications"`
}

// Record is the whole per-user document.
type Record struct {
	Receipts     []StoredReceipt `json:"receipts"`
	Spending     Spending        `json:"spending"`
	Gamification Gamification    `json:"gamification"`
	Preferences  Preferences     `json:"preferences"`
}

// maxStoredReceipts caps the document so it cannot grow without bound.
const maxStoredReceipts = 100

func NewRecord() *Record {
	return &Record{
		Receipts: []StoredReceipt{},
		Spending: Spending{
			Categories:      map[string]float64{},
			MonthlySpending: map[string]float64{},
		},
		Gamification: Gamification{
			Level:  1,
			Badges: []string{},
		},
		Preferences: Preferences{
			BudgetGoal:    400000,
			Currency:      "INR",
			Notifications: true,
		},
	}
}

// AddReceipt prepends the receipt and recomputes the spending aggregates.
func (r *Record) AddReceipt(receipt StoredReceipt) {
	r.Receipts = append([]StoredReceipt{receipt}, r.Receipts...)
	if len(r.Receipts) > maxStoredReceipts {
		r.Receipts = r.Receipts[:maxStoredReceipts]
	}

	r.Spending.TotalSpent += receipt.Amount

	category := receipt.Category
	if category == "" {
		category = "Other"
	}
	if r.Spending.Categories == nil {
		r.Spending.Categories = map[string]float64{}
	}
	r.Spending.Categories[category] += receipt.Amount

	if r.Spending.MonthlySpending == nil {
		r.Spending.MonthlySpending = map[string]float64{}
	}
	if t, err := time.Parse("2006-01-02", receipt.Date); err == nil {
		r.Spending.MonthlySpending[t.Format("2006-01")] += receipt.Amount
	}
}

// AddPoints bumps the accumulated point balance.
func (r *Record) AddPoints(points int) {
	r.Gamification.Points += points
}

// Store loads and saves user records. Load returns a fresh default record for
// unknown users; it never fails on absence.
type Store interface {
	Load(ctx context.Context, userID string) (*Record, error)
	Save(ctx context.Context, userID string, record *Record) error
}
