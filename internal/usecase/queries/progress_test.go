//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"stash-backend/internal/catalog"
	"stash-backend/internal/pkg/clock"
	"stash-backend/internal/pkg/config"
	"stash-backend/internal/simnet"
	"stash-backend/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietSim() simnet.Simulator {
	return simnet.New(config.SimConfig{DelayScale: 0, FailuresEnabled: false})
}

func fixedClock() clock.Clock {
	return clock.NewMockClock(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
}

func TestUserProgress(t *testing.T) {
	q := queries.NewProgressQueries(quietSim(), fixedClock())

	t.Run("the same identity always derives the same progress", func(t *testing.T) {
		first, err := q.UserProgress(context.Background(), "user_42")
		require.NoError(t, err)
		second, err := q.UserProgress(context.Background(), "user_42")
		require.NoError(t, err)

		assert.Empty(t, cmp.Diff(first, second))
	})

	t.Run("different identities diverge", func(t *testing.T) {
		a, err := q.UserProgress(context.Background(), "user_1")
		require.NoError(t, err)
		b, err := q.UserProgress(context.Background(), "user_2")
		require.NoError(t, err)

		assert.NotEmpty(t, cmp.Diff(a, b))
	})

	t.Run("derived values stay inside their documented ranges", func(t *testing.T) {
		for _, id := range []string{"user_1", "user_2", "alice", "bob", "demo@stash.app"} {
			p, err := q.UserProgress(context.Background(), id)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, p.Level, 3)
			assert.LessOrEqual(t, p.Level, 10)
			assert.GreaterOrEqual(t, p.XP, 200)
			assert.Less(t, p.XP, 1000)
			assert.Equal(t, p.Level*200, p.XPForNextLevel)
			assert.Equal(t, 400000, p.TotalBudget)
			assert.Equal(t, p.TotalBudget-p.TotalSpent, p.BudgetRemaining)
		}
	})
}

func TestDashboard(t *testing.T) {
	q := queries.NewProgressQueries(quietSim(), fixedClock())

	dash, err := q.Dashboard(context.Background(), "user_42")
	require.NoError(t, err)

	t.Run("stats agree with the progress derivation", func(t *testing.T) {
		progress, err := q.UserProgress(context.Background(), "user_42")
		require.NoError(t, err)

		assert.Equal(t, progress.TotalSpent, dash.DashboardStats.TotalSpending)
		assert.Equal(t, progress.Level, dash.DashboardStats.CurrentLevel)
		assert.Equal(t, progress.ScanStreak, dash.DashboardStats.ScanStreak)
	})

	t.Run("spending change is a signed percentage string", func(t *testing.T) {
		assert.Regexp(t, `^[+-]\d+\.\d% from last month$`, dash.DashboardStats.SpendingChange)
	})

	t.Run("the landing screen gets three receipts and four levels", func(t *testing.T) {
		assert.Len(t, dash.RecentReceipts, 3)
		assert.Len(t, dash.Levels, 4)
	})
}

func TestRecentReceipts(t *testing.T) {
	q := queries.NewProgressQueries(quietSim(), fixedClock())

	receipts, err := q.RecentReceipts(context.Background(), "user_42", 5)
	require.NoError(t, err)
	require.Len(t, receipts, 5)

	t.Run("sorted newest first", func(t *testing.T) {
		for i := 1; i < len(receipts); i++ {
			assert.GreaterOrEqual(t, receipts[i-1].Date, receipts[i].Date)
		}
	})

	t.Run("amounts track the merchant baseline", func(t *testing.T) {
		for _, r := range receipts {
			assert.Positive(t, r.Amount)
			assert.NotEmpty(t, r.Merchant)
			assert.NotEmpty(t, r.Category)
		}
	})

	t.Run("merchant picks are stable per identity", func(t *testing.T) {
		again, err := q.RecentReceipts(context.Background(), "user_42", 5)
		require.NoError(t, err)
		for i := range receipts {
			assert.Equal(t, receipts[i].Merchant, again[i].Merchant)
			assert.Equal(t, receipts[i].Amount, again[i].Amount)
		}
	})
}

func TestBadges(t *testing.T) {
	q := queries.NewProgressQueries(quietSim(), fixedClock())

	badges, err := q.Badges(context.Background(), "user_42")
	require.NoError(t, err)
	require.Len(t, badges, len(catalog.Badges()))

	for _, b := range badges {
		if b.IsEarned {
			assert.NotEmpty(t, b.EarnedDate, "earned badge %d needs a date", b.ID)
		} else {
			assert.Empty(t, b.EarnedDate, "unearned badge %d must not carry a date", b.ID)
		}
	}
}

func TestNotifications(t *testing.T) {
	q := queries.NewProgressQueries(quietSim(), fixedClock())

	notifications, err := q.Notifications(context.Background(), "user_42")
	require.NoError(t, err)
	require.Len(t, notifications, 6)

	for i := 1; i < len(notifications); i++ {
		assert.False(t, notifications[i].Timestamp.After(notifications[i-1].Timestamp))
	}
}

func TestLevels(t *testing.T) {
	q := queries.NewProgressQueries(quietSim(), fixedClock())

	levels, err := q.Levels(context.Background())
	require.NoError(t, err)
	assert.Len(t, levels, 8)
}
