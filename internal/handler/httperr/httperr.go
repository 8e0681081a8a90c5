package httperr

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stash-backend/internal/pkg/errs"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		Retriable bool   `json:"retriable"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Error.Retriable = status == http.StatusServiceUnavailable ||
		status == http.StatusBadGateway || status == http.StatusTooManyRequests
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError maps a typed service error onto the wire: kind picks
// the status, the machine code and message pass through, and retriable kinds
// get a Retry-After header when the error carries a hint.
func AbortWithDomainError(c *gin.Context, err error) {
	e := errs.AsE(err)
	status := statusForKind(e.Kind)
	if e.RetryAfter > 0 {
		c.Header("Retry-After", strconv.Itoa(int(e.RetryAfter.Seconds())))
	}

	resp := Response{Status: status}
	resp.Error.Code = e.WireCode()
	resp.Error.Message = e.Message
	resp.Error.Retriable = e.Kind.Retriable()
	resp.Detail = e.Detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func statusForKind(kind errs.Kind) int {
	switch kind {
	case errs.KindServiceUnavailable:
		return http.StatusServiceUnavailable
	case errs.KindNetwork:
		return http.StatusBadGateway
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindRateLimited:
		return http.StatusTooManyRequests
	case errs.KindNotAuthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
