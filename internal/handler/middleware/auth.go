package middleware

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"stash-backend/internal/handler/httperr"
	"stash-backend/internal/pkg/errs"
	"stash-backend/internal/usecase"
)

const (
	ctxUserIDKey    = "user_id"
	ctxUserEmailKey = "user_email"
)

// TokenValidator is the slice of the auth usecase the middleware needs.
type TokenValidator interface {
	ValidateToken(tokenString string) (*usecase.AuthenticatedUser, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokenValidator: tokenValidator}
}

// RequireAuth rejects the request before any simulated delay is incurred:
// a missing or invalid identity must cost the caller nothing.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithDomainError(c, errs.NotAuthenticated())
			return
		}

		user, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithDomainError(c, errs.NotAuthenticated())
			return
		}

		c.Set(ctxUserIDKey, user.ID)
		c.Set(ctxUserEmailKey, user.Email)
		c.Next()
	}
}

// OptionalAuth sets the user context when a valid token is present but never
// aborts; handlers treat the missing identity as "anonymous".
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		user, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ctxUserIDKey, user.ID)
		c.Set(ctxUserEmailKey, user.Email)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok && id != ""
}

func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ctxUserEmailKey)
	if !exists {
		return "", false
	}

	e, ok := email.(string)
	return e, ok && e != ""
}
