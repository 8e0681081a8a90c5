//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"stash-backend/internal/handler/api"
	"stash-backend/internal/handler/middleware"
	"stash-backend/internal/pkg/clock"
	"stash-backend/internal/pkg/config"
	"stash-backend/internal/pkg/errs"
	"stash-backend/internal/pkg/jwt"
	"stash-backend/internal/pkg/randcode"
	"stash-backend/internal/simnet"
	"stash-backend/internal/usecase"
	"stash-backend/internal/usecase/commands"
	"stash-backend/internal/usecase/queries"
)

// outageSim fails every Call with the policy's own error so outage paths can
// be exercised without spinning the failure roll.
type outageSim struct{}

func (outageSim) Call(_ context.Context, p simnet.Policy) error {
	return errs.Unavailable(p.FailureCode, p.FailureMessage, p.RetryAfter)
}

func (outageSim) Roll(float64) bool { return false }

type WalletHandlerSuite struct {
	suite.Suite
	engine *gin.Engine
	token  string
}

func TestWalletHandlerSuite(t *testing.T) {
	suite.Run(t, new(WalletHandlerSuite))
}

func (s *WalletHandlerSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	authUseCase, err := usecase.NewAuthUseCase(
		jwt.NewService("test-secret", time.Hour),
		config.DemoConfig{Email: "demo@stash.app", Password: "scan-save-win"},
	)
	s.Require().NoError(err)

	login, err := authUseCase.Login(context.Background(), "demo@stash.app", "scan-save-win")
	s.Require().NoError(err)
	s.token = login.Token

	sim := simnet.New(config.SimConfig{DelayScale: 0, FailuresEnabled: false})
	clk := clock.NewMockClock(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	codes := randcode.New()

	handler := api.NewWalletHandler(
		commands.NewWalletCommands(sim, clk, codes),
		queries.NewWalletQueries(sim, clk, codes),
	)
	outageHandler := api.NewWalletHandler(
		commands.NewWalletCommands(outageSim{}, clk, codes),
		queries.NewWalletQueries(outageSim{}, clk, codes),
	)
	authMW := middleware.NewAuthMiddleware(authUseCase)

	s.engine = gin.New()
	s.engine.Use(middleware.ErrorHandler())
	s.engine.GET("/api/wallet/vouchers", handler.Vouchers)
	s.engine.POST("/api/wallet/redeem", authMW.RequireAuth(), handler.Redeem)
	s.engine.GET("/api/wallet/redemptions", authMW.RequireAuth(), handler.Redemptions)
	s.engine.POST("/api/wallet/passes", authMW.RequireAuth(), handler.AddPass)
	s.engine.POST("/api/wallet/redeem-down", authMW.RequireAuth(), outageHandler.Redeem)
}

func (s *WalletHandlerSuite) do(method, path string, body []byte, authed bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func (s *WalletHandlerSuite) TestVouchersListsTheCatalog() {
	rec := s.do(http.MethodGet, "/api/wallet/vouchers", nil, false)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body struct {
		Vouchers []struct {
			ID       string `json:"id"`
			Category string `json:"category"`
		} `json:"vouchers"`
		Count int `json:"count"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.NotEmpty(body.Vouchers)
	s.Equal(len(body.Vouchers), body.Count)
}

func (s *WalletHandlerSuite) TestVouchersCategoryFilter() {
	rec := s.do(http.MethodGet, "/api/wallet/vouchers?category=food", nil, false)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body struct {
		Vouchers []struct {
			Category string `json:"category"`
		} `json:"vouchers"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().NotEmpty(body.Vouchers)
	for _, v := range body.Vouchers {
		s.Equal("food", v.Category)
	}
}

func (s *WalletHandlerSuite) TestRedeemSuccessEnvelope() {
	payload := []byte(`{"voucherId":"voucher_starbucks_500","pointsToSpend":5000}`)
	rec := s.do(http.MethodPost, "/api/wallet/redeem", payload, true)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body struct {
		Success         bool   `json:"success"`
		RemainingPoints int    `json:"remainingPoints"`
		Redemption      *struct {
			RedemptionCode string `json:"redemptionCode"`
			Status         string `json:"status"`
		} `json:"redemption"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.True(body.Success)
	s.Equal(2500, body.RemainingPoints)
	s.Require().NotNil(body.Redemption)
	s.Contains(body.Redemption.RedemptionCode, "STARBUCKS-")
}

func (s *WalletHandlerSuite) TestRedeemBusinessRejectionStays200() {
	payload := []byte(`{"voucherId":"voucher_starbucks_500","pointsToSpend":100}`)
	rec := s.do(http.MethodPost, "/api/wallet/redeem", payload, true)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.False(body.Success)
	s.Equal("Insufficient points", body.Error)
}

func (s *WalletHandlerSuite) TestRedeemWithoutTokenIs401() {
	payload := []byte(`{"voucherId":"voucher_starbucks_500","pointsToSpend":5000}`)
	rec := s.do(http.MethodPost, "/api/wallet/redeem", payload, false)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *WalletHandlerSuite) TestSimulatedOutageIs503WithRetryAfter() {
	payload := []byte(`{"voucherId":"voucher_starbucks_500","pointsToSpend":5000}`)
	rec := s.do(http.MethodPost, "/api/wallet/redeem-down", payload, true)
	s.Require().Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("3", rec.Header().Get("Retry-After"))

	var body struct {
		Error struct {
			Code      string `json:"code"`
			Retriable bool   `json:"retriable"`
		} `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("REDEMPTION_FAILED", body.Error.Code)
	s.True(body.Error.Retriable)
}

func (s *WalletHandlerSuite) TestRedemptionsList() {
	rec := s.do(http.MethodGet, "/api/wallet/redemptions", nil, true)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body struct {
		Redemptions []struct {
			Status string `json:"status"`
		} `json:"redemptions"`
		Count int `json:"count"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(3, body.Count)
}

func (s *WalletHandlerSuite) TestAddPassValidation() {
	rec := s.do(http.MethodPost, "/api/wallet/passes", []byte(`{}`), true)
	s.Equal(http.StatusBadRequest, rec.Code)
}
