package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-boutique-backend/internal/delivery/http/response"
	"go-boutique-backend/pkg/apperror"
	"go-boutique-backend/pkg/logger"
)

// ErrorHandler converts errors appended to the gin context into the
// structured envelope. Anything that is not an AppError becomes an opaque
// "unexpected" fault: internal detail is logged, never sent to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Kind, nil)
			return
		}

		logger.Log.Error("unhandled error", "error", err, "path", c.Request.URL.Path)
		response.Error(c, http.StatusInternalServerError, "unexpected", nil)
	}
}

// Recovery returns a well-formed 500 response even when a handler panics.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Log.Error("panic recovered", "panic", recovered, "path", c.Request.URL.Path)
		response.Error(c, http.StatusInternalServerError, "unexpected", nil)
	})
}
