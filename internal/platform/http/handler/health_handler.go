// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// pingTimeout はストア疎通確認の上限時間です。
const pingTimeout = 2 * time.Second

// PingFunc はストアへの疎通を確認します。
type PingFunc func(ctx context.Context) error

// NewHealth は /healthz エンドポイントのハンドラーを生成します。
// pingがnilの場合はプロセスの生存のみを返します。
func NewHealth(ping PingFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		status, body := http.StatusOK, gin.H{"status": "ok"}
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
			defer cancel()
			if err := ping(ctx); err != nil {
				slog.Error("health check failed", "error", err, "remote_addr", c.ClientIP())
				status, body = http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "unreachable"}
			} else {
				body["database"] = "ok"
			}
		}

		if c.Request.Method == http.MethodHead {
			c.Status(status)
			return
		}
		c.JSON(status, body)
	}
}
