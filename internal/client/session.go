package client

import (
	"context"

	"stash-backend/internal/catalog"
	"stash-backend/internal/pkg/errs"
	"stash-backend/internal/usecase/commands"
	"stash-backend/internal/usecase/queries"
)

// Services bundles every domain mock service the facade can reach.
type Services struct {
	Receipts  commands.ReceiptCommands
	Wallet    commands.WalletCommands
	Points    commands.PointsCommands
	Insights  commands.InsightCommands
	Progress  queries.ProgressQueries
	WalletQ   queries.WalletQueries
	Analytics queries.AnalyticsQueries
}

// Session binds the services to one caller identity. A Session with an empty
// identity fails every identity-scoped call immediately with
// NOT_AUTHENTICATED; the underlying service (and its simulated delay) is
// never invoked in that case.
type Session struct {
	userID   string
	services Services
}

func NewSession(userID string, services Services) *Session {
	return &Session{userID: userID, services: services}
}

func (s *Session) authed() error {
	if s.userID == "" {
		return errs.NotAuthenticated()
	}
	return nil
}

func (s *Session) Dashboard(ctx context.Context) Result[*queries.Dashboard] {
	if err := s.authed(); err != nil {
		return fail[*queries.Dashboard](err)
	}
	data, err := s.services.Progress.Dashboard(ctx, s.userID)
	if err != nil {
		return fail[*queries.Dashboard](err)
	}
	return ok(data)
}

func (s *Session) Progress(ctx context.Context) Result[*queries.UserProgress] {
	if err := s.authed(); err != nil {
		return fail[*queries.UserProgress](err)
	}
	data, err := s.services.Progress.UserProgress(ctx, s.userID)
	if err != nil {
		return fail[*queries.UserProgress](err)
	}
	return ok(data)
}

func (s *Session) Badges(ctx context.Context) Result[[]queries.BadgeView] {
	if err := s.authed(); err != nil {
		return fail[[]queries.BadgeView](err)
	}
	data, err := s.services.Progress.Badges(ctx, s.userID)
	if err != nil {
		return fail[[]queries.BadgeView](err)
	}
	return ok(data)
}

func (s *Session) Notifications(ctx context.Context) Result[[]queries.NotificationView] {
	if err := s.authed(); err != nil {
		return fail[[]queries.NotificationView](err)
	}
	data, err := s.services.Progress.Notifications(ctx, s.userID)
	if err != nil {
		return fail[[]queries.NotificationView](err)
	}
	return ok(data)
}

func (s *Session) RecentReceipts(ctx context.Context, count int) Result[[]queries.GeneratedReceipt] {
	if err := s.authed(); err != nil {
		return fail[[]queries.GeneratedReceipt](err)
	}
	data, err := s.services.Progress.RecentReceipts(ctx, s.userID, count)
	if err != nil {
		return fail[[]queries.GeneratedReceipt](err)
	}
	return ok(data)
}

// Vouchers is catalog-wide, not identity-scoped, so it works without auth.
func (s *Session) Vouchers(ctx context.Context, category catalog.VoucherCategory) Result[[]catalog.Voucher] {
	data, err := s.services.WalletQ.AvailableVouchers(ctx, category)
	if err != nil {
		return fail[[]catalog.Voucher](err)
	}
	return ok(data)
}

func (s *Session) Redemptions(ctx context.Context) Result[[]queries.RedeemedVoucherView] {
	if err := s.authed(); err != nil {
		return fail[[]queries.RedeemedVoucherView](err)
	}
	data, err := s.services.WalletQ.UserVouchers(ctx, s.userID)
	if err != nil {
		return fail[[]queries.RedeemedVoucherView](err)
	}
	return ok(data)
}

func (s *Session) RedeemVoucher(ctx context.Context, voucherID string, pointsToSpend int) Result[*commands.RedeemResult] {
	if err := s.authed(); err != nil {
		return fail[*commands.RedeemResult](err)
	}
	data, err := s.services.Wallet.RedeemVoucher(ctx, voucherID, s.userID, pointsToSpend)
	if err != nil {
		return fail[*commands.RedeemResult](err)
	}
	return ok(data)
}

func (s *Session) AwardPoints(ctx context.Context, receiptID string) Result[*commands.PointsAward] {
	if err := s.authed(); err != nil {
		return fail[*commands.PointsAward](err)
	}
	data, err := s.services.Points.AwardPoints(ctx, receiptID, s.userID)
	if err != nil {
		return fail[*commands.PointsAward](err)
	}
	return ok(data)
}

func (s *Session) SpendingReport(ctx context.Context) Result[*queries.SpendingReport] {
	if err := s.authed(); err != nil {
		return fail[*queries.SpendingReport](err)
	}
	data, err := s.services.Analytics.SpendingReport(ctx, s.userID)
	if err != nil {
		return fail[*queries.SpendingReport](err)
	}
	return ok(data)
}

func (s *Session) DetectAnomaly(ctx context.Context, receiptData, spendingPatterns string) Result[*commands.AnomalyReport] {
	if err := s.authed(); err != nil {
		return fail[*commands.AnomalyReport](err)
	}
	data, err := s.services.Insights.DetectAnomaly(ctx, receiptData, spendingPatterns)
	if err != nil {
		return fail[*commands.AnomalyReport](err)
	}
	return ok(data)
}

func (s *Session) ForecastBudget(ctx context.Context, receiptHistory, spendingPatterns string) Result[*commands.BudgetForecast] {
	if err := s.authed(); err != nil {
		return fail[*commands.BudgetForecast](err)
	}
	data, err := s.services.Insights.ForecastBudget(ctx, receiptHistory, spendingPatterns)
	if err != nil {
		return fail[*commands.BudgetForecast](err)
	}
	return ok(data)
}
