package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "pfa/internal/errors"
	"pfa/internal/logger"
)

// WriteError renders err as the JSON error envelope
// {"error": {"code": ..., "message": ...}}. AppErrors keep their status, code
// and message; anything else is logged and reported as a generic internal
// error so details never leak to clients.
func WriteError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"request_id", c.GetString(requestIDKey),
		)
		appErr = apperrors.ErrInternalServer
	} else if appErr.Internal != nil {
		logger.Get().Errorw("app error",
			"code", appErr.Code,
			"message", appErr.Message,
			"internal", appErr.Internal.Error(),
			"path", c.Request.URL.Path,
			"request_id", c.GetString(requestIDKey),
		)
	}

	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}

// ErrorHandler returns a Gin middleware that renders the last error attached
// to the context with c.Error, if no response has been written yet.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		WriteError(c, c.Errors.Last().Err)
	}
}
