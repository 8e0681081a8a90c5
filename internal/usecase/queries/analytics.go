package queries

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"stash-backend/internal/catalog"
	"stash-backend/internal/pkg/clock"
	"stash-backend/internal/simnet"
)

var spendingReportPolicy = simnet.Policy{
	MinDelay:       1500 * time.Millisecond,
	MaxDelay:       3500 * time.Millisecond,
	FailureRate:    0.08,
	FailureCode:    "SERVICE_UNAVAILABLE",
	FailureMessage: "Analytics service temporarily unavailable",
	RetryAfter:     3 * time.Second,
}

type AnalyticsQueries interface {
	SpendingReport(ctx context.Context, userID string) (*SpendingReport, error)
}

type analyticsQueriesImpl struct {
	sim   simnet.Simulator
	clock clock.Clock
}

func NewAnalyticsQueries(sim simnet.Simulator, clk clock.Clock) AnalyticsQueries {
	return &analyticsQueriesImpl{sim: sim, clock: clk}
}

// SpendingReport returns the canned receipt table with an insight picked at
// random per call. Total spend is always the exact sum of the listed rows.
func (q *analyticsQueriesImpl) SpendingReport(ctx context.Context, _ string) (*SpendingReport, error) {
	if err := q.sim.Call(ctx, spendingReportPolicy); err != nil {
		return nil, err
	}

	now := q.clock.Now()
	rows := catalog.ReportedReceipts()

	var totalSpent float64
	views := make([]ReportedReceiptView, 0, len(rows))
	for i, row := range rows {
		totalSpent += row.Total
		views = append(views, ReportedReceiptView{
			ReceiptID: fmt.Sprintf("receipt_%d_%d", now.UnixMilli(), i+1),
			Merchant:  row.Merchant,
			Total:     fmt.Sprintf("%.2f", row.Total),
			Timestamp: now.AddDate(0, 0, -row.DaysAgo),
		})
	}

	insight := catalog.SpendingInsightByIndex(rand.IntN(catalog.SpendingInsightCount()))

	latest := views
	if len(latest) > 5 {
		latest = latest[:5]
	}

	return &SpendingReport{
		Report:       insight,
		Receipts:     latest,
		TotalSpent:   totalSpent,
		ReceiptCount: len(rows),
	}, nil
}
