package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stash-backend/internal/handler/httperr"
	"stash-backend/internal/usecase/queries"
)

type DashboardHandler struct {
	progress  queries.ProgressQueries
	analytics queries.AnalyticsQueries
}

func NewDashboardHandler(progress queries.ProgressQueries, analytics queries.AnalyticsQueries) *DashboardHandler {
	return &DashboardHandler{progress: progress, analytics: analytics}
}

// @Summary Dashboard aggregate
// @Description Everything the landing screen needs in one call
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.Dashboard
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/dashboard [get]
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	dashboard, err := h.progress.Dashboard(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// @Summary Spending report
// @Description Recent receipts with a narrative insight and total spend
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.SpendingReport
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/analytics/spending-report [get]
func (h *DashboardHandler) SpendingReport(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	report, err := h.analytics.SpendingReport(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// @Summary Level catalog
// @Description The static list of level definitions
// @Tags dashboard
// @Produce json
// @Success 200 {array} catalog.Level
// @Router /api/levels [get]
func (h *DashboardHandler) Levels(c *gin.Context) {
	levels, err := h.progress.Levels(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, levels)
}
