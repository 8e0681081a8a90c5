package commands

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"stash-backend/internal/infra/userstore"
	"stash-backend/internal/pkg/clock"
	"stash-backend/internal/pkg/errs"
	"stash-backend/internal/simnet"
)

var awardPolicy = simnet.Policy{
	MinDelay:       800 * time.Millisecond,
	MaxDelay:       2000 * time.Millisecond,
	FailureRate:    0.05,
	FailureCode:    "POINTS_AWARD_FAILED",
	FailureMessage: "Points could not be awarded at this time",
	RetryAfter:     2 * time.Second,
}

type AwardStatus string

const (
	AwardSuccess          AwardStatus = "success"
	AwardSuccessWithBonus AwardStatus = "success_with_bonus"
)

type PointsAward struct {
	PointsAwarded int         `json:"pointsAwarded"`
	BonusPoints   int         `json:"bonusPoints"`
	TotalPoints   int         `json:"totalPoints"`
	ReceiptID     string      `json:"receiptId"`
	Status        AwardStatus `json:"status"`
}

type PointsCommands interface {
	AwardPoints(ctx context.Context, receiptID, userID string) (*PointsAward, error)
}

type pointsCommandsImpl struct {
	sim   simnet.Simulator
	clock clock.Clock
	store userstore.Store
}

func NewPointsCommands(sim simnet.Simulator, clk clock.Clock, store userstore.Store) PointsCommands {
	return &pointsCommandsImpl{sim: sim, clock: clk, store: store}
}

// AwardPoints grants 25-74 base points plus a 30% chance of a 10-34 bonus.
// The running total is a deterministic function of the calendar day, not an
// accumulator, so repeated calls on the same day report a consistent balance.
func (c *pointsCommandsImpl) AwardPoints(ctx context.Context, receiptID, userID string) (*PointsAward, error) {
	if receiptID == "" {
		return nil, errs.Validation("MISSING_RECEIPT_ID", "A receipt id is required to award points.", nil)
	}

	if err := c.sim.Call(ctx, awardPolicy); err != nil {
		return nil, err
	}

	base := rand.IntN(50) + 25
	bonus := 0
	status := AwardSuccess
	if rand.Float64() < 0.3 {
		bonus = rand.IntN(25) + 10
		status = AwardSuccessWithBonus
	}
	awarded := base + bonus

	days := c.clock.Now().Unix() / 86400
	total := int(days%1000)*47 + awarded

	c.persist(ctx, userID, awarded)

	return &PointsAward{
		PointsAwarded: awarded,
		BonusPoints:   bonus,
		TotalPoints:   total,
		ReceiptID:     receiptID,
		Status:        status,
	}, nil
}

func (c *pointsCommandsImpl) persist(ctx context.Context, userID string, points int) {
	if userID == "" || userID == "anonymous" {
		return
	}

	record, err := c.store.Load(ctx, userID)
	if err != nil {
		slog.Warn("failed to load user record, skipping points persist", "user_id", userID, "error", err)
		return
	}
	record.AddPoints(points)
	if err := c.store.Save(ctx, userID, record); err != nil {
		slog.Warn("failed to save user record", "user_id", userID, "error", err)
	}
}
