package middleware

import (
	"log/slog"
	"net/http"

	"github.com/Varma0099/lill-things/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors a handler recorded with c.Error but never
// wrote. A public error carries its response in Meta; anything else is
// classified by its domain sentinel.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		if resp, ok := last.Meta.(httperr.Response); ok && last.IsType(gin.ErrorTypePublic) {
			c.JSON(resp.Status, resp)
			return
		}

		status, msg := httperr.Classify(last.Err, "Internal server error")
		if status == http.StatusInternalServerError {
			slog.ErrorContext(c.Request.Context(), "unhandled request error",
				"path", c.FullPath(), "error", last.Err.Error())
		}
		resp := httperr.Response{Status: status}
		resp.Error.Message = msg
		c.JSON(status, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
