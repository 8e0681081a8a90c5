//go:build unit

package catalog_test

import (
	"testing"

	"stash-backend/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoucherLookups(t *testing.T) {
	t.Run("lookup by id", func(t *testing.T) {
		v, ok := catalog.VoucherByID("voucher_starbucks_500")
		require.True(t, ok)
		assert.Equal(t, "Starbucks", v.Brand)
		assert.Equal(t, 2500, v.PointsCost)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, ok := catalog.VoucherByID("voucher_nonexistent")
		assert.False(t, ok)
	})

	t.Run("every voucher id is unique", func(t *testing.T) {
		seen := map[string]bool{}
		for _, v := range catalog.Vouchers() {
			assert.False(t, seen[v.ID], "duplicate id %s", v.ID)
			seen[v.ID] = true
		}
	})
}

func TestVouchersByCategory(t *testing.T) {
	t.Run("empty category returns everything sorted by popularity", func(t *testing.T) {
		all := catalog.VouchersByCategory("")
		require.Len(t, all, catalog.VoucherCount())
		for i := 1; i < len(all); i++ {
			assert.LessOrEqual(t, all[i-1].PopularityRank, all[i].PopularityRank)
		}
	})

	t.Run("category filter only returns matching entries", func(t *testing.T) {
		food := catalog.VouchersByCategory(catalog.CategoryFood)
		require.NotEmpty(t, food)
		for _, v := range food {
			assert.Equal(t, catalog.CategoryFood, v.Category)
		}
	})

	t.Run("result is a copy, catalog stays immutable", func(t *testing.T) {
		first := catalog.VouchersByCategory("")
		first[0].Brand = "mutated"
		again := catalog.VouchersByCategory("")
		assert.NotEqual(t, "mutated", again[0].Brand)
	})
}

func TestExtractionBundles(t *testing.T) {
	require.Equal(t, 4, catalog.ExtractionBundleCount())

	for i := 0; i < catalog.ExtractionBundleCount(); i++ {
		bundle := catalog.ExtractionBundleByIndex(i)
		assert.NotEmpty(t, bundle.Merchant)
		assert.Positive(t, bundle.Amount)
		assert.NotEmpty(t, bundle.Items)
	}
}

func TestReportedReceipts(t *testing.T) {
	rows := catalog.ReportedReceipts()
	require.Len(t, rows, 7)

	var total float64
	for _, row := range rows {
		total += row.Total
	}
	assert.InDelta(t, 961.17, total, 0.001)
}

func TestLevels(t *testing.T) {
	levels := catalog.Levels()
	require.Len(t, levels, 8)
	assert.Equal(t, catalog.LevelActive, levels[3].Status)

	// Goals only go up
	for i := 1; i < len(levels); i++ {
		assert.Greater(t, levels[i].Goal, levels[i-1].Goal)
	}
}

func TestNarratives(t *testing.T) {
	assert.Equal(t, 3, catalog.ForecastCount())
	assert.Equal(t, 5, catalog.SpendingInsightCount())
	assert.Equal(t, 4, catalog.NotificationTemplateCount())
}
