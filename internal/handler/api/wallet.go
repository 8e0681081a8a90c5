package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stash-backend/internal/catalog"
	reqdto "stash-backend/internal/handler/dto/request"
	resdto "stash-backend/internal/handler/dto/response"
	"stash-backend/internal/handler/httperr"
	"stash-backend/internal/usecase/commands"
	"stash-backend/internal/usecase/queries"
)

type WalletHandler struct {
	cmds commands.WalletCommands
	q    queries.WalletQueries
}

func NewWalletHandler(cmds commands.WalletCommands, q queries.WalletQueries) *WalletHandler {
	return &WalletHandler{cmds: cmds, q: q}
}

// @Summary List available vouchers
// @Description List the voucher catalog, optionally filtered by category, sorted by popularity
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Param category query string false "Voucher category filter"
// @Success 200 {object} resdto.VoucherListResponse
// @Failure 503 {object} httperr.Response
// @Router /api/wallet/vouchers [get]
func (h *WalletHandler) Vouchers(c *gin.Context) {
	category := catalog.VoucherCategory(c.Query("category"))

	vouchers, err := h.q.AvailableVouchers(c.Request.Context(), category)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVouchers(vouchers))
}

// @Summary Redeem a voucher
// @Description Exchange points for a voucher; business rejections come back inside the envelope
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemVoucherRequest true "Redeem request"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/wallet/redeem [post]
func (h *WalletHandler) Redeem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.RedeemVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "VALIDATION", "Invalid request format", nil)
		return
	}

	result, err := h.cmds.RedeemVoucher(c.Request.Context(), req.VoucherID, userID, req.PointsToSpend)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRedeemResult(result))
}

// @Summary List redeemed vouchers
// @Description List the caller's historical redemptions, newest first
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RedemptionListResponse
// @Failure 401 {object} httperr.Response
// @Router /api/wallet/redemptions [get]
func (h *WalletHandler) Redemptions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	views, err := h.q.UserVouchers(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRedemptionViews(views))
}

// @Summary Add redemption to wallet
// @Description Push a redemption into the device wallet as a pass
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddToWalletRequest true "Wallet pass request"
// @Success 200 {object} commands.WalletPassResult
// @Failure 400 {object} httperr.Response
// @Router /api/wallet/passes [post]
func (h *WalletHandler) AddPass(c *gin.Context) {
	var req reqdto.AddToWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "VALIDATION", "Invalid request format", nil)
		return
	}

	result, err := h.cmds.AddToWalletPass(c.Request.Context(), req.RedemptionID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Wallet integration status
// @Description Report the device wallet capabilities
// @Tags wallet
// @Produce json
// @Success 200 {object} queries.WalletIntegrationStatus
// @Router /api/wallet/integration [get]
func (h *WalletHandler) Integration(c *gin.Context) {
	status, err := h.q.IntegrationStatus(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
