package commands

import (
	"context"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"time"

	"stash-backend/internal/catalog"
	"stash-backend/internal/simnet"
)

var (
	anomalyPolicy = simnet.Policy{
		MinDelay: 1500 * time.Millisecond,
		MaxDelay: 3000 * time.Millisecond,
	}
	forecastPolicy = simnet.Policy{
		MinDelay: 2000 * time.Millisecond,
		MaxDelay: 5000 * time.Millisecond,
	}
)

// receiptData arrives semi-structured, e.g.
// "Merchant: Fancy Restaurant, Date: 2024-01-15, Amount: 150.00, Category: Dining".
var (
	amountPattern   = regexp.MustCompile(`(?i)amount:\s*([\d.]+)`)
	merchantPattern = regexp.MustCompile(`(?i)merchant:\s*([^,]+)`)
	categoryPattern = regexp.MustCompile(`(?i)category:\s*([^,]+)`)
)

type AnomalyReport struct {
	AnomalyDetected bool   `json:"anomalyDetected"`
	Explanation     string `json:"explanation"`
}

type BudgetForecast struct {
	Forecast         string `json:"forecast"`
	SavingApproaches string `json:"savingApproaches"`
}

type InsightCommands interface {
	DetectAnomaly(ctx context.Context, receiptData, spendingPatterns string) (*AnomalyReport, error)
	ForecastBudget(ctx context.Context, receiptHistory, spendingPatterns string) (*BudgetForecast, error)
}

type insightCommandsImpl struct {
	sim simnet.Simulator
}

func NewInsightCommands(sim simnet.Simulator) InsightCommands {
	return &insightCommandsImpl{sim: sim}
}

// DetectAnomaly applies ordered threshold rules to the parsed receipt; the
// first matching rule wins, so a luxury merchant over the moderate threshold
// still reports the high-severity branch.
func (c *insightCommandsImpl) DetectAnomaly(ctx context.Context, receiptData, _ string) (*AnomalyReport, error) {
	if err := c.sim.Call(ctx, anomalyPolicy); err != nil {
		return nil, err
	}

	amount, merchant, category := parseReceiptData(receiptData)
	lowerMerchant := strings.ToLower(merchant)

	switch {
	case amount > 500 || strings.Contains(lowerMerchant, "luxury"):
		return &AnomalyReport{
			AnomalyDetected: true,
			Explanation: fmt.Sprintf(
				"Unusually high spending of ₹%.2f detected at %s. This is significantly above your typical %s spending and may impact your monthly budget.",
				amount, merchant, category),
		}, nil
	case amount > 200:
		return &AnomalyReport{
			AnomalyDetected: true,
			Explanation: fmt.Sprintf(
				"Moderately elevated spending of ₹%.2f at %s. This %s expense is higher than your recent average; keep an eye on this category.",
				amount, merchant, category),
		}, nil
	case strings.Contains(lowerMerchant, "coffee") && amount > 50:
		return &AnomalyReport{
			AnomalyDetected: true,
			Explanation: fmt.Sprintf(
				"Your coffee spending of ₹%.2f at %s is above your usual range for this category. Small recurring expenses like this add up over a month.",
				amount, merchant),
		}, nil
	default:
		return &AnomalyReport{
			AnomalyDetected: false,
			Explanation: fmt.Sprintf(
				"Spending of ₹%.2f at %s looks consistent with your normal %s patterns. No anomaly detected.",
				amount, merchant, category),
		}, nil
	}
}

// ForecastBudget ignores its inputs and returns one canned narrative pair
// chosen uniformly at random per call.
func (c *insightCommandsImpl) ForecastBudget(ctx context.Context, _, _ string) (*BudgetForecast, error) {
	if err := c.sim.Call(ctx, forecastPolicy); err != nil {
		return nil, err
	}

	pick := catalog.ForecastByIndex(rand.IntN(catalog.ForecastCount()))
	return &BudgetForecast{
		Forecast:         pick.Forecast,
		SavingApproaches: pick.SavingApproaches,
	}, nil
}

func parseReceiptData(data string) (amount float64, merchant, category string) {
	merchant = "Unknown Merchant"
	category = "general"

	if m := amountPattern.FindStringSubmatch(data); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			amount = v
		}
	}
	if m := merchantPattern.FindStringSubmatch(data); m != nil {
		merchant = strings.TrimSpace(m[1])
	}
	if m := categoryPattern.FindStringSubmatch(data); m != nil {
		category = strings.TrimSpace(m[1])
	}
	return amount, merchant, category
}
