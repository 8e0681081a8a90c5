package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "stash-backend/internal/handler/dto/request"
	resdto "stash-backend/internal/handler/dto/response"
	"stash-backend/internal/handler/httperr"
	"stash-backend/internal/handler/middleware"
	"stash-backend/internal/pkg/errs"
	"stash-backend/internal/usecase"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

// @Summary User login
// @Description Login with the demo account credentials
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "VALIDATION", "Invalid request format", nil)
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.NormalizedEmail(), req.Password)
	if err != nil {
		if errs.Is(err, usecase.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "NOT_AUTHENTICATED", "Invalid email or password", nil)
			return
		}
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Get current user
// @Description Get the authenticated user's identity
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} usecase.AuthenticatedUser
// @Failure 401 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "NOT_AUTHENTICATED", "User not authenticated", nil)
		return
	}

	email, _ := middleware.GetUserEmail(c)
	c.JSON(http.StatusOK, usecase.AuthenticatedUser{ID: userID, Email: email})
}
