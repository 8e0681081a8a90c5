package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "stash-backend/internal/handler/dto/request"
	"stash-backend/internal/handler/httperr"
	"stash-backend/internal/usecase/commands"
)

type InsightHandler struct {
	cmds commands.InsightCommands
}

func NewInsightHandler(cmds commands.InsightCommands) *InsightHandler {
	return &InsightHandler{cmds: cmds}
}

// @Summary Detect expense anomaly
// @Description Apply ordered threshold rules to a semi-structured receipt string
// @Tags insights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.DetectAnomalyRequest true "Anomaly request"
// @Success 200 {object} commands.AnomalyReport
// @Failure 400 {object} httperr.Response
// @Router /api/insights/anomaly [post]
func (h *InsightHandler) DetectAnomaly(c *gin.Context) {
	var req reqdto.DetectAnomalyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "VALIDATION", "Invalid request format", nil)
		return
	}

	report, err := h.cmds.DetectAnomaly(c.Request.Context(), req.ReceiptData, req.SpendingPatterns)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// @Summary Forecast budget
// @Description Produce a canned budget forecast with paired savings advice
// @Tags insights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ForecastBudgetRequest true "Forecast request"
// @Success 200 {object} commands.BudgetForecast
// @Failure 400 {object} httperr.Response
// @Router /api/insights/forecast [post]
func (h *InsightHandler) ForecastBudget(c *gin.Context) {
	var req reqdto.ForecastBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "VALIDATION", "Invalid request format", nil)
		return
	}

	forecast, err := h.cmds.ForecastBudget(c.Request.Context(), req.ReceiptHistory, req.SpendingPatterns)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, forecast)
}
