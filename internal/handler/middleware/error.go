package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stash-backend/internal/handler/httperr"
	"stash-backend/internal/pkg/errs"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				// Public: Meta ⇒ Return as is
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		// Anything left here never produced a public response; log it with
		// its stack before masking it as a 500.
		if last := c.Errors.Last(); last != nil {
			slog.Error("unhandled request error",
				"path", c.Request.URL.Path,
				"error", last.Err.Error(),
				"stack", errs.ExtractStackLines(last.Err, 10))
		}

		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, internalErrorResponse())
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				c.JSON(http.StatusInternalServerError, internalErrorResponse())
				c.Abort()
			}
		}()
		c.Next()
	}
}

func internalErrorResponse() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Code = "UNKNOWN_ERROR"
	resp.Error.Message = "Internal server error"
	return resp
}
