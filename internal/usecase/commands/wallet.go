package commands

import (
	"context"
	"fmt"
	"time"

	"stash-backend/internal/catalog"
	"stash-backend/internal/pkg/clock"
	"stash-backend/internal/pkg/errs"
	"stash-backend/internal/simnet"
	"stash-backend/internal/usecase/queries"
)

// defaultPointsBalance is the balance echoed on a not-found rejection, where
// no offer was consumed. Matches the starting balance in the rewards screen.
const defaultPointsBalance = 5000

var (
	redeemPolicy = simnet.Policy{
		MinDelay:       1500 * time.Millisecond,
		MaxDelay:       4000 * time.Millisecond,
		FailureRate:    0.01,
		FailureCode:    "REDEMPTION_FAILED",
		FailureMessage: "Redemption service temporarily unavailable",
		RetryAfter:     3 * time.Second,
	}
	walletPassPolicy = simnet.Policy{
		MinDelay: 1000 * time.Millisecond,
		MaxDelay: 2500 * time.Millisecond,
	}
)

// RedeemResult is an envelope: business rejections (unknown voucher, not
// enough points, out of stock) come back as Success=false with Error set,
// never as a transport error. Only a simulated outage surfaces as an error.
type RedeemResult struct {
	Success         bool                         `json:"success"`
	Error           string                       `json:"error,omitempty"`
	Redemption      *queries.RedeemedVoucherView `json:"redemption,omitempty"`
	RemainingPoints int                          `json:"remainingPoints"`
}

// WalletPassResult reports the outcome of pushing a redemption into the
// device wallet. Failure here is soft: the redemption itself stays valid.
type WalletPassResult struct {
	Success   bool   `json:"success"`
	PassID    string `json:"passId,omitempty"`
	WalletURL string `json:"walletUrl,omitempty"`
	Error     string `json:"error,omitempty"`
}

type WalletCommands interface {
	RedeemVoucher(ctx context.Context, voucherID, userID string, pointsBalance int) (*RedeemResult, error)
	AddToWalletPass(ctx context.Context, redemptionID string) (*WalletPassResult, error)
}

type walletCommandsImpl struct {
	sim   simnet.Simulator
	clock clock.Clock
	codes CodeGenerator
}

func NewWalletCommands(sim simnet.Simulator, clk clock.Clock, codes CodeGenerator) WalletCommands {
	return &walletCommandsImpl{sim: sim, clock: clk, codes: codes}
}

func (c *walletCommandsImpl) RedeemVoucher(ctx context.Context, voucherID, _ string, pointsBalance int) (*RedeemResult, error) {
	if err := c.sim.Call(ctx, redeemPolicy); err != nil {
		return nil, err
	}

	voucher, ok := catalog.VoucherByID(voucherID)
	if !ok {
		return &RedeemResult{
			Success:         false,
			Error:           "Voucher not found",
			RemainingPoints: defaultPointsBalance,
		}, nil
	}
	// The offered balance is judged as-is: offering zero is insufficient
	// for every voucher, never silently topped up.
	if pointsBalance < voucher.PointsCost {
		return &RedeemResult{
			Success:         false,
			Error:           "Insufficient points",
			RemainingPoints: pointsBalance,
		}, nil
	}
	if voucher.Availability == catalog.OutOfStock {
		return &RedeemResult{
			Success:         false,
			Error:           "Voucher is currently out of stock",
			RemainingPoints: pointsBalance,
		}, nil
	}

	now := c.clock.Now()
	code := queries.RedemptionCode(voucher.Brand, c.codes.Suffix(8))
	redemptionID := fmt.Sprintf("redemption_%d", now.UnixMilli())

	return &RedeemResult{
		Success: true,
		Redemption: &queries.RedeemedVoucherView{
			ID:             redemptionID,
			VoucherID:      voucher.ID,
			Voucher:        voucher,
			RedemptionCode: code,
			RedeemedAt:     now,
			ExpiresAt:      now.AddDate(0, 0, voucher.ExpiryDays),
			Status:         queries.RedemptionActive,
			QRCode:         queries.QRCodeURL(code),
			WalletPassID:   "wallet_pass_" + redemptionID,
		},
		RemainingPoints: pointsBalance - voucher.PointsCost,
	}, nil
}

func (c *walletCommandsImpl) AddToWalletPass(ctx context.Context, redemptionID string) (*WalletPassResult, error) {
	if redemptionID == "" {
		return nil, errs.Validation("MISSING_REDEMPTION_ID", "A redemption id is required.", nil)
	}

	if err := c.sim.Call(ctx, walletPassPolicy); err != nil {
		return nil, err
	}

	// The wallet bridge flakes independently of the redemption service.
	if c.sim.Roll(0.005) {
		return &WalletPassResult{
			Success: false,
			Error:   "Failed to add voucher to wallet. Please try again.",
		}, nil
	}

	passID := "wallet_pass_" + redemptionID
	return &WalletPassResult{
		Success:   true,
		PassID:    passID,
		WalletURL: "https://pay.google.com/gp/v/save/" + passID,
	}, nil
}
