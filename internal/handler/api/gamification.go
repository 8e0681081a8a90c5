package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	reqdto "stash-backend/internal/handler/dto/request"
	"stash-backend/internal/handler/httperr"
	"stash-backend/internal/usecase/commands"
	"stash-backend/internal/usecase/queries"
)

type GamificationHandler struct {
	cmds commands.PointsCommands
	q    queries.ProgressQueries
}

func NewGamificationHandler(cmds commands.PointsCommands, q queries.ProgressQueries) *GamificationHandler {
	return &GamificationHandler{cmds: cmds, q: q}
}

// @Summary Award points for a receipt
// @Description Grant base points plus an occasional bonus for a scanned receipt
// @Tags gamification
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AwardPointsRequest true "Award request"
// @Success 200 {object} commands.PointsAward
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/gamification/points [post]
func (h *GamificationHandler) AwardPoints(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.AwardPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "VALIDATION", "Invalid request format", nil)
		return
	}

	award, err := h.cmds.AwardPoints(c.Request.Context(), req.ReceiptID, userID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, award)
}

// @Summary Get user progress
// @Description Level, XP, streaks and budget totals derived from the caller's identity
// @Tags gamification
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.UserProgress
// @Failure 401 {object} httperr.Response
// @Router /api/users/me/progress [get]
func (h *GamificationHandler) Progress(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	progress, err := h.q.UserProgress(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

// @Summary List badges
// @Description Badge definitions with the caller's earned state
// @Tags gamification
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.BadgeView
// @Failure 401 {object} httperr.Response
// @Router /api/users/me/badges [get]
func (h *GamificationHandler) Badges(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	badges, err := h.q.Badges(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, badges)
}

// @Summary List notifications
// @Description The caller's recent notifications, newest first
// @Tags gamification
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.NotificationView
// @Failure 401 {object} httperr.Response
// @Router /api/users/me/notifications [get]
func (h *GamificationHandler) Notifications(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	notifications, err := h.q.Notifications(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// @Summary List recent receipts
// @Description Ephemeral receipts derived from the caller's identity
// @Tags gamification
// @Produce json
// @Security BearerAuth
// @Param count query int false "Number of receipts" default(5)
// @Success 200 {array} queries.GeneratedReceipt
// @Failure 401 {object} httperr.Response
// @Router /api/users/me/receipts [get]
func (h *GamificationHandler) RecentReceipts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	count := 5
	if raw := c.Query("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 50 {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidCount, "VALIDATION", "count must be between 1 and 50", nil)
			return
		}
		count = parsed
	}

	receipts, err := h.q.RecentReceipts(c.Request.Context(), userID, count)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, receipts)
}
