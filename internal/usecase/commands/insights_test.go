//go:build unit

package commands_test

import (
	"context"
	"testing"

	"stash-backend/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectAnomaly(t *testing.T) {
	cmds := commands.NewInsightCommands(quietSim())

	detect := func(t *testing.T, receiptData string) *commands.AnomalyReport {
		t.Helper()
		report, err := cmds.DetectAnomaly(context.Background(), receiptData, "Average dining expense is $50.")
		require.NoError(t, err)
		return report
	}

	t.Run("high amount takes the high-severity branch", func(t *testing.T) {
		report := detect(t, "Merchant: Fancy Restaurant, Amount: 600.00, Category: Dining")
		assert.True(t, report.AnomalyDetected)
		assert.Contains(t, report.Explanation, "Unusually high")
		assert.Contains(t, report.Explanation, "Fancy Restaurant")
	})

	t.Run("luxury merchant over the moderate threshold still reports high severity", func(t *testing.T) {
		report := detect(t, "Merchant: Luxury Diner, Amount: 250.00, Category: Dining")
		assert.True(t, report.AnomalyDetected)
		assert.Contains(t, report.Explanation, "Unusually high")
		assert.NotContains(t, report.Explanation, "Moderately")
	})

	t.Run("moderate amount", func(t *testing.T) {
		report := detect(t, "Merchant: Target, Amount: 250.00, Category: Shopping")
		assert.True(t, report.AnomalyDetected)
		assert.Contains(t, report.Explanation, "Moderately elevated")
	})

	t.Run("coffee branch beats the no-anomaly default", func(t *testing.T) {
		report := detect(t, "Merchant: Joe's Coffee, Amount: 60.00, Category: Food & Drink")
		assert.True(t, report.AnomalyDetected)
		assert.Contains(t, report.Explanation, "coffee spending")
		assert.Contains(t, report.Explanation, "Joe's Coffee")
	})

	t.Run("ordinary spending is not an anomaly", func(t *testing.T) {
		report := detect(t, "Merchant: Walmart, Amount: 45.00, Category: Groceries")
		assert.False(t, report.AnomalyDetected)
		assert.Contains(t, report.Explanation, "No anomaly")
	})

	t.Run("unparseable input falls back to defaults without anomaly", func(t *testing.T) {
		report := detect(t, "garbage input with no structure")
		assert.False(t, report.AnomalyDetected)
		assert.Contains(t, report.Explanation, "Unknown Merchant")
	})
}

func TestForecastBudget(t *testing.T) {
	cmds := commands.NewInsightCommands(quietSim())

	forecast, err := cmds.ForecastBudget(context.Background(), "", "")
	require.NoError(t, err)

	assert.NotEmpty(t, forecast.Forecast)
	assert.NotEmpty(t, forecast.SavingApproaches)
}
