package queries

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"stash-backend/internal/catalog"
	"stash-backend/internal/pkg/clock"
	"stash-backend/internal/pkg/seed"
	"stash-backend/internal/simnet"
)

var (
	vouchersPolicy = simnet.Policy{
		MinDelay:       800 * time.Millisecond,
		MaxDelay:       2000 * time.Millisecond,
		FailureRate:    0.005,
		FailureCode:    "SERVICE_UNAVAILABLE",
		FailureMessage: "Voucher service temporarily unavailable",
		RetryAfter:     2 * time.Second,
	}
	userVouchersPolicy = simnet.Policy{
		MinDelay: 600 * time.Millisecond,
		MaxDelay: 1600 * time.Millisecond,
	}
	integrationPolicy = simnet.Policy{
		MinDelay: 300 * time.Millisecond,
		MaxDelay: 800 * time.Millisecond,
	}
)

// CodeGenerator produces redemption-code suffixes. Codes are deliberately
// true-random (variety), unlike the seeded voucher picks around them.
type CodeGenerator interface {
	Suffix(n int) string
}

type WalletQueries interface {
	AvailableVouchers(ctx context.Context, category catalog.VoucherCategory) ([]catalog.Voucher, error)
	UserVouchers(ctx context.Context, userID string) ([]RedeemedVoucherView, error)
	IntegrationStatus(ctx context.Context) (*WalletIntegrationStatus, error)
}

type walletQueriesImpl struct {
	sim   simnet.Simulator
	clock clock.Clock
	codes CodeGenerator
}

func NewWalletQueries(sim simnet.Simulator, clk clock.Clock, codes CodeGenerator) WalletQueries {
	return &walletQueriesImpl{sim: sim, clock: clk, codes: codes}
}

func (q *walletQueriesImpl) AvailableVouchers(ctx context.Context, category catalog.VoucherCategory) ([]catalog.Voucher, error) {
	if err := q.sim.Call(ctx, vouchersPolicy); err != nil {
		return nil, err
	}
	return catalog.VouchersByCategory(category), nil
}

// UserVouchers derives exactly 3 historical redemptions from the identity
// seed. Voucher pick, age and status flip are seeded so the list is stable
// per user; only the redemption codes vary between calls.
func (q *walletQueriesImpl) UserVouchers(ctx context.Context, userID string) ([]RedeemedVoucherView, error) {
	if err := q.sim.Call(ctx, userVouchersPolicy); err != nil {
		return nil, err
	}

	s := seed.FromString(userID)
	now := q.clock.Now()
	views := make([]RedeemedVoucherView, 0, 3)

	for i := 0; i < 3; i++ {
		o := int64(i)
		voucher := catalog.VoucherByIndex(seed.IntN(s, o, catalog.VoucherCount()))
		daysAgo := seed.IntN(s, o+10, 30) // Up to 30 days ago
		redeemedAt := now.AddDate(0, 0, -daysAgo)
		expiresAt := redeemedAt.AddDate(0, 0, voucher.ExpiryDays)

		status := RedemptionActive
		switch {
		case expiresAt.Before(now):
			status = RedemptionExpired
		case seed.Chance(s, o+20, 0.7):
			status = RedemptionUsed
		}

		code := RedemptionCode(voucher.Brand, q.codes.Suffix(8))

		views = append(views, RedeemedVoucherView{
			ID:             fmt.Sprintf("redemption_%d_%d", s, i),
			VoucherID:      voucher.ID,
			Voucher:        voucher,
			RedemptionCode: code,
			RedeemedAt:     redeemedAt,
			ExpiresAt:      expiresAt,
			Status:         status,
			QRCode:         QRCodeURL(code),
			WalletPassID:   fmt.Sprintf("wallet_pass_redemption_%d_%d", s, i),
		})
	}

	sort.Slice(views, func(i, j int) bool {
		return views[i].RedeemedAt.After(views[j].RedeemedAt)
	})
	return views, nil
}

func (q *walletQueriesImpl) IntegrationStatus(ctx context.Context) (*WalletIntegrationStatus, error) {
	if err := q.sim.Call(ctx, integrationPolicy); err != nil {
		return nil, err
	}
	return &WalletIntegrationStatus{
		IsGoogleWalletAvailable: true,
		HasWalletPermission:     true,
		WalletAppVersion:        "2.0.0",
		SupportedVoucherTypes:   []string{"gift_card", "loyalty_card", "offer", "transit"},
	}, nil
}

// RedemptionCode renders "BRAND-SUFFIX" proof-of-exchange strings.
func RedemptionCode(brand, suffix string) string {
	return fmt.Sprintf("%s-%s", strings.ToUpper(brand), suffix)
}

// QRCodeURL points at a chart renderer for the given code.
func QRCodeURL(code string) string {
	return "https://chart.googleapis.com/chart?chs=200x200&cht=qr&chl=" + url.QueryEscape(code)
}
