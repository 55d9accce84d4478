package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hituru/admin-backend/internal/common"
	"github.com/hituru/admin-backend/pkg/auth"
	"github.com/hituru/admin-backend/pkg/logger"
)

const adminKey = "admin"

// Admin check messages
const (
	msgTokenMissing = "토큰이 제공되지 않았습니다."
	msgNotAdmin     = "관리자 권한이 없습니다."
	msgVerifyFailed = "토큰 검증 중 오류가 발생했습니다."
)

// AdminCheck allows the request only when the Authorization token belongs to an admin
func AdminCheck(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			common.MessageResponse(c, http.StatusForbidden, msgTokenMissing)
			return
		}

		admin, err := verifier.Verify(c.Request.Context(), auth.ExtractToken(header))
		if err != nil {
			if auth.IsRejection(err) {
				common.MessageResponse(c, http.StatusForbidden, msgNotAdmin)
				return
			}
			_ = c.Error(err)
			logger.GetLogger().Error().Err(err).Str("path", c.Request.URL.Path).Msg("admin token verification failed")
			common.MessageResponse(c, http.StatusInternalServerError, msgVerifyFailed)
			return
		}

		c.Set(adminKey, admin)
		c.Next()
	}
}

// GetAdmin returns the verified admin, or nil before AdminCheck ran
func GetAdmin(c *gin.Context) *auth.Admin {
	if v, ok := c.Get(adminKey); ok {
		if admin, ok := v.(*auth.Admin); ok {
			return admin
		}
	}
	return nil
}

// GetAdminID returns the verified admin's mem_id or ""
func GetAdminID(c *gin.Context) string {
	if admin := GetAdmin(c); admin != nil {
		return admin.MemID
	}
	return ""
}
