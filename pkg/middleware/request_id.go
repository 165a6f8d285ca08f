package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type contextKey string

const (
	// RequestIDHeader é o cabeçalho usado para propagar o id da requisição
	RequestIDHeader = "X-Request-ID"

	requestIDKey contextKey = "request_id"
)

// RequestID reaproveita o X-Request-ID recebido ou gera um novo
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Header(RequestIDHeader, requestID)
		c.Set(string(requestIDKey), requestID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), requestIDKey, requestID))

		c.Next()
	}
}

// GetRequestID extrai o id da requisição do contexto
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
