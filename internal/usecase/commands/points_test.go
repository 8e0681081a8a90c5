//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"stash-backend/internal/infra/userstore"
	usmock "stash-backend/internal/infra/userstore/mock"
	"stash-backend/internal/pkg/clock"
	"stash-backend/internal/pkg/errs"
	"stash-backend/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAwardPoints(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	newCmds := func(t *testing.T) (commands.PointsCommands, *usmock.MockStore) {
		ctrl := gomock.NewController(t)
		store := usmock.NewMockStore(ctrl)
		return commands.NewPointsCommands(quietSim(), clock.NewMockClock(now), store), store
	}

	t.Run("awarded points stay in range and add up", func(t *testing.T) {
		cmds, store := newCmds(t)
		store.EXPECT().Load(gomock.Any(), "user_1").Return(userstore.NewRecord(), nil).AnyTimes()
		store.EXPECT().Save(gomock.Any(), "user_1", gomock.Any()).Return(nil).AnyTimes()

		for i := 0; i < 50; i++ {
			award, err := cmds.AwardPoints(context.Background(), "receipt_abc", "user_1")
			require.NoError(t, err)

			base := award.PointsAwarded - award.BonusPoints
			assert.GreaterOrEqual(t, base, 25)
			assert.Less(t, base, 75)

			if award.Status == commands.AwardSuccessWithBonus {
				assert.GreaterOrEqual(t, award.BonusPoints, 10)
				assert.Less(t, award.BonusPoints, 35)
			} else {
				assert.Equal(t, commands.AwardSuccess, award.Status)
				assert.Zero(t, award.BonusPoints)
			}
			assert.Equal(t, "receipt_abc", award.ReceiptID)
		}
	})

	t.Run("the running total is day-deterministic", func(t *testing.T) {
		cmds, store := newCmds(t)
		store.EXPECT().Load(gomock.Any(), "user_1").Return(userstore.NewRecord(), nil).AnyTimes()
		store.EXPECT().Save(gomock.Any(), "user_1", gomock.Any()).Return(nil).AnyTimes()

		days := now.Unix() / 86400
		dayBase := int(days%1000) * 47

		award, err := cmds.AwardPoints(context.Background(), "receipt_abc", "user_1")
		require.NoError(t, err)
		assert.Equal(t, dayBase+award.PointsAwarded, award.TotalPoints)
	})

	t.Run("awarded points are persisted on the user record", func(t *testing.T) {
		cmds, store := newCmds(t)

		record := userstore.NewRecord()
		store.EXPECT().Load(gomock.Any(), "user_1").Return(record, nil)
		store.EXPECT().Save(gomock.Any(), "user_1", record).DoAndReturn(
			func(_ context.Context, _ string, r *userstore.Record) error {
				assert.Positive(t, r.Gamification.Points)
				return nil
			})

		award, err := cmds.AwardPoints(context.Background(), "receipt_abc", "user_1")
		require.NoError(t, err)
		assert.Equal(t, award.PointsAwarded, record.Gamification.Points)
	})

	t.Run("anonymous awards skip the store", func(t *testing.T) {
		cmds, _ := newCmds(t)
		_, err := cmds.AwardPoints(context.Background(), "receipt_abc", "anonymous")
		require.NoError(t, err)
	})

	t.Run("missing receipt id is a validation error", func(t *testing.T) {
		cmds, _ := newCmds(t)
		_, err := cmds.AwardPoints(context.Background(), "", "user_1")
		require.Error(t, err)

		e := errs.AsE(err)
		assert.Equal(t, errs.KindValidation, e.Kind)
		assert.Equal(t, "MISSING_RECEIPT_ID", e.WireCode())
	})
}
