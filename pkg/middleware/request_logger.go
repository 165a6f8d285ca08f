package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/food-backoffice/pkg/logger"
)

// RequestLogger registra uma linha estruturada por requisição
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		kv := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
			"request_id", GetRequestID(c.Request.Context()),
		}
		if org := c.GetString("organization_id"); org != "" {
			kv = append(kv, "organization_id", org)
		}

		switch {
		case status >= 500:
			log.Error("requisição com erro", append(kv, "errors", c.Errors.String())...)
		case status >= 400:
			log.Warn("requisição recusada", kv...)
		default:
			log.Info("requisição atendida", kv...)
		}
	}
}
