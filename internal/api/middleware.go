package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wailsba22/arabic-explainer/internal/util"
)

// requestLogger tags each request with an id, echoes it in X-Request-ID and
// logs one line when the request completes.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Set(requestIDContextKey, requestID)
		c.Header(requestIDHeader, requestID)

		timer := util.StartTimer()
		c.Next()

		entry := entryFor(c).WithFields(logrus.Fields{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": timer.ElapsedMs(),
		})
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			entry.Error("request failed")
		case status >= http.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request completed")
		}
	}
}

// recovery turns panics into the generic server error reply.
func recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		entryFor(c).WithField("panic", recovered).Error("recovered from panic")
		renderMessage(c, http.StatusInternalServerError, serverErrorMessage)
	})
}

func entryFor(c *gin.Context) *logrus.Entry {
	return logrus.WithField(requestIDContextKey, c.GetString(requestIDContextKey))
}
