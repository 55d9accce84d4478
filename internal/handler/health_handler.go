package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Pinger is the optional cache dependency reported by /health
type Pinger interface {
	IsAvailable() bool
	Ping(ctx context.Context) error
}

const healthTimeout = 2 * time.Second

// Health godoc
// @Summary      헬스 체크
// @Description  데이터베이스와 Redis 연결 상태를 보고합니다. Redis 는 선택 의존성이라 장애여도 200 입니다.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]interface{}
// @Router       /health [get]
func Health(service string, db *gorm.DB, cache Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		status, code := "ok", http.StatusOK
		database := "ok"
		if err := pingDB(ctx, db); err != nil {
			_ = c.Error(err)
			database = "down"
			status, code = "degraded", http.StatusServiceUnavailable
		}

		redis := "disabled"
		if cache != nil && cache.IsAvailable() {
			redis = "ok"
			if err := cache.Ping(ctx); err != nil {
				redis = "down"
			}
		}

		c.JSON(code, gin.H{
			"status":   status,
			"service":  service,
			"database": database,
			"redis":    redis,
			"time":     time.Now().Format(time.RFC3339),
		})
	}
}

func pingDB(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
