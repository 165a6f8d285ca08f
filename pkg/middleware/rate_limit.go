package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/food-backoffice/internal/adapter/api/dto"
	"github.com/hugohenrick/food-backoffice/internal/infrastructure/cache"
	"github.com/hugohenrick/food-backoffice/internal/infrastructure/metrics"
)

// RateLimit limita as requisições por IP em uma janela fixa.
// Sem cache disponível a requisição segue normalmente.
func RateLimit(c cache.Cache, limit int64, window time.Duration) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if limit <= 0 {
			ctx.Next()
			return
		}

		count, ok := c.Increment(ctx.Request.Context(), cache.RateLimitKey(ctx.ClientIP()), window)
		if ok && count > limit {
			metrics.RateLimited.Inc()
			ctx.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("Muitas requisições, tente novamente mais tarde"))
			return
		}

		ctx.Next()
	}
}
