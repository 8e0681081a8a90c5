//go:build unit

package queries_test

import (
	"context"
	"testing"

	"stash-backend/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpendingReport(t *testing.T) {
	q := queries.NewAnalyticsQueries(quietSim(), fixedClock())

	report, err := q.SpendingReport(context.Background(), "user_42")
	require.NoError(t, err)

	t.Run("the total is the exact sum of the canned rows", func(t *testing.T) {
		assert.InDelta(t, 961.17, report.TotalSpent, 0.001)
		assert.Equal(t, 7, report.ReceiptCount)
	})

	t.Run("only the latest five rows are listed", func(t *testing.T) {
		require.Len(t, report.Receipts, 5)
		for _, r := range report.Receipts {
			assert.Regexp(t, `^\d+\.\d{2}$`, r.Total)
			assert.NotEmpty(t, r.Merchant)
		}
	})

	t.Run("an insight narrative is attached", func(t *testing.T) {
		assert.NotEmpty(t, report.Report)
	})
}
