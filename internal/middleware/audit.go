package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hituru/admin-backend/pkg/logger"
)

// Audit records every state-changing admin request (ban, unban, delete) once it completed.
// Must run after AdminCheck so the acting admin is known.
func Audit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		c.Next()

		admin := GetAdmin(c)
		if admin == nil {
			return
		}
		log := logger.WithAdmin(admin.MemID)
		log.Info().
			Str("audit", "admin_action").
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("route", c.FullPath()).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Str("client_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Msg("audit")
	}
}
