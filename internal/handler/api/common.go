package api

import (
	"github.com/gin-gonic/gin"

	"stash-backend/internal/handler/httperr"
	"stash-backend/internal/handler/middleware"
	"stash-backend/internal/pkg/errs"
)

var (
	errUnauthenticated = errs.NotAuthenticated()
	errInvalidCount    = errs.Validation("VALIDATION", "invalid count parameter", nil)
)

// requireUserID pulls the authenticated user id from context, aborting with
// NOT_AUTHENTICATED if the auth middleware did not run or did not set it.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithDomainError(c, errUnauthenticated)
		return "", false
	}
	return userID, true
}

// userOrAnonymous never aborts; endpoints that accept unauthenticated calls
// fall back to the anonymous identity.
func userOrAnonymous(c *gin.Context) string {
	if userID, ok := middleware.GetUserID(c); ok {
		return userID
	}
	return "anonymous"
}
