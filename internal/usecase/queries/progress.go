package queries

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"stash-backend/internal/catalog"
	"stash-backend/internal/pkg/clock"
	"stash-backend/internal/pkg/seed"
	"stash-backend/internal/simnet"
)

// Seed offsets for the per-user progress sub-streams. Offsets are part of the
// contract: changing one changes every user's derived data.
const (
	offsetLevel          = 0
	offsetXP             = 1
	offsetScanStreak     = 2
	offsetBudgetStreak   = 3
	offsetTotalSpent     = 4
	offsetSpendingChange = 5
)

const totalBudget = 400000 // ₹4 lakh default budget

var (
	dashboardPolicy = simnet.Policy{
		MinDelay:       800 * time.Millisecond,
		MaxDelay:       2000 * time.Millisecond,
		FailureRate:    0.005,
		FailureCode:    "SERVICE_UNAVAILABLE",
		FailureMessage: "Dashboard service temporarily unavailable",
		RetryAfter:     2 * time.Second,
	}
	progressPolicy = simnet.Policy{
		MinDelay: 500 * time.Millisecond,
		MaxDelay: 1200 * time.Millisecond,
	}
	badgesPolicy = simnet.Policy{
		MinDelay: 600 * time.Millisecond,
		MaxDelay: 1400 * time.Millisecond,
	}
	notificationsPolicy = simnet.Policy{
		MinDelay: 400 * time.Millisecond,
		MaxDelay: 1000 * time.Millisecond,
	}
	receiptsListPolicy = simnet.Policy{
		MinDelay: 1000 * time.Millisecond,
		MaxDelay: 2500 * time.Millisecond,
	}
)

type ProgressQueries interface {
	UserProgress(ctx context.Context, userID string) (*UserProgress, error)
	Dashboard(ctx context.Context, userID string) (*Dashboard, error)
	RecentReceipts(ctx context.Context, userID string, count int) ([]GeneratedReceipt, error)
	Badges(ctx context.Context, userID string) ([]BadgeView, error)
	Notifications(ctx context.Context, userID string) ([]NotificationView, error)
	Levels(ctx context.Context) ([]catalog.Level, error)
}

type progressQueriesImpl struct {
	sim   simnet.Simulator
	clock clock.Clock
}

func NewProgressQueries(sim simnet.Simulator, clk clock.Clock) ProgressQueries {
	return &progressQueriesImpl{sim: sim, clock: clk}
}

func (q *progressQueriesImpl) UserProgress(ctx context.Context, userID string) (*UserProgress, error) {
	if err := q.sim.Call(ctx, progressPolicy); err != nil {
		return nil, err
	}
	p := deriveProgress(userID)
	return &p, nil
}

// deriveProgress is pure: no delay, no randomness beyond the identity seed.
func deriveProgress(userID string) UserProgress {
	s := seed.FromString(userID)

	level := seed.IntN(s, offsetLevel, 8) + 3          // Level 3-10
	xp := seed.IntN(s, offsetXP, 800) + 200            // 200-1000 XP
	scanStreak := seed.IntN(s, offsetScanStreak, 15) + 1
	budgetStreak := seed.IntN(s, offsetBudgetStreak, 5) + 1
	totalSpent := seed.IntN(s, offsetTotalSpent, 300000) + 50000 // ₹50k-₹350k

	return UserProgress{
		Level:           level,
		XP:              xp,
		XPForNextLevel:  level * 200,
		ScanStreak:      scanStreak,
		BudgetStreak:    budgetStreak,
		TotalSpent:      totalSpent,
		BudgetRemaining: totalBudget - totalSpent,
		TotalBudget:     totalBudget,
	}
}

func deriveDashboardStats(userID string) DashboardStats {
	p := deriveProgress(userID)
	s := seed.FromString(userID)

	changePercent := seed.Float(s, offsetSpendingChange)*40 - 20 // -20% to +20%
	changeText := fmt.Sprintf("%.1f%% from last month", changePercent)
	if changePercent >= 0 {
		changeText = "+" + changeText
	}

	return DashboardStats{
		TotalSpending:   p.TotalSpent,
		BudgetRemaining: p.BudgetRemaining,
		CurrentLevel:    p.Level,
		ScanStreak:      p.ScanStreak,
		SpendingChange:  changeText,
		BudgetProgress:  float64(p.TotalBudget-p.BudgetRemaining) / float64(p.TotalBudget) * 100,
	}
}

func (q *progressQueriesImpl) Dashboard(ctx context.Context, userID string) (*Dashboard, error) {
	if err := q.sim.Call(ctx, dashboardPolicy); err != nil {
		return nil, err
	}

	levels := catalog.Levels()
	if len(levels) > 4 {
		levels = levels[:4]
	}

	return &Dashboard{
		UserProgress:   deriveProgress(userID),
		DashboardStats: deriveDashboardStats(userID),
		RecentReceipts: q.generateReceipts(userID, 3),
		Levels:         levels,
	}, nil
}

func (q *progressQueriesImpl) RecentReceipts(ctx context.Context, userID string, count int) ([]GeneratedReceipt, error) {
	if err := q.sim.Call(ctx, receiptsListPolicy); err != nil {
		return nil, err
	}
	return q.generateReceipts(userID, count), nil
}

func (q *progressQueriesImpl) generateReceipts(userID string, count int) []GeneratedReceipt {
	s := seed.FromString(userID)
	now := q.clock.Now()
	receipts := make([]GeneratedReceipt, 0, count)

	for i := 0; i < count; i++ {
		o := int64(i)
		merchant := catalog.MerchantByIndex(seed.IntN(s, o, catalog.MerchantCount()))
		variance := seed.Float(s, o+10)*0.6 + 0.7 // 0.7x to 1.3x
		amount := math.Round(merchant.BaseAmount * variance)
		daysAgo := i + seed.IntN(s, o+20, 3)
		date := now.AddDate(0, 0, -daysAgo)

		status := ReceiptNormal
		if amount > merchant.BaseAmount*1.5 {
			status = ReceiptAnomaly
		}

		receipts = append(receipts, GeneratedReceipt{
			ID:       fmt.Sprintf("receipt_%d_%d", now.UnixMilli(), i),
			Merchant: merchant.Name,
			Amount:   amount,
			Date:     date.Format("2006-01-02"),
			Category: merchant.Category,
			Status:   status,
		})
	}

	sort.Slice(receipts, func(i, j int) bool {
		return receipts[i].Date > receipts[j].Date
	})
	return receipts
}

func (q *progressQueriesImpl) Badges(ctx context.Context, userID string) ([]BadgeView, error) {
	if err := q.sim.Call(ctx, badgesPolicy); err != nil {
		return nil, err
	}

	s := seed.FromString(userID)
	now := q.clock.Now()
	defs := catalog.Badges()
	views := make([]BadgeView, 0, len(defs))

	for _, def := range defs {
		o := int64(def.ID)
		earned := seed.Chance(s, o, 0.3) // 70% chance earned
		view := BadgeView{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Icon:        def.Icon,
			IsEarned:    earned,
		}
		if earned {
			daysAgo := seed.IntN(s, o+10, 30)
			view.EarnedDate = now.AddDate(0, 0, -daysAgo).Format(time.RFC3339)
		}
		views = append(views, view)
	}
	return views, nil
}

func (q *progressQueriesImpl) Notifications(ctx context.Context, userID string) ([]NotificationView, error) {
	if err := q.sim.Call(ctx, notificationsPolicy); err != nil {
		return nil, err
	}

	s := seed.FromString(userID)
	now := q.clock.Now()
	views := make([]NotificationView, 0, 6)

	for i := 0; i < 6; i++ {
		o := int64(i)
		tmpl := catalog.NotificationTemplateByIndex(seed.IntN(s, o, catalog.NotificationTemplateCount()))
		hoursAgo := seed.IntN(s, o+10, 72) // Up to 3 days ago

		views = append(views, NotificationView{
			ID:        fmt.Sprintf("notification_%d", i),
			Type:      tmpl.Type,
			Title:     tmpl.Title,
			Message:   tmpl.Message,
			Timestamp: now.Add(-time.Duration(hoursAgo) * time.Hour),
			IsRead:    seed.Chance(s, o+20, 0.4), // 60% chance read
			Priority:  tmpl.Priority,
		})
	}

	sort.Slice(views, func(i, j int) bool {
		return views[i].Timestamp.After(views[j].Timestamp)
	})
	return views, nil
}

func (q *progressQueriesImpl) Levels(_ context.Context) ([]catalog.Level, error) {
	return catalog.Levels(), nil
}
