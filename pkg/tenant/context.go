package tenant

import (
	"context"

	"github.com/gin-gonic/gin"
)

type contextKey string

const (
	// HeaderName é o cabeçalho que identifica a organização da requisição
	HeaderName = "x-organization"

	organizationIDKey contextKey = "organization_id"
	ginKey                       = "organization_id"
)

// WithOrganizationID define a organização no contexto
func WithOrganizationID(ctx context.Context, organizationID string) context.Context {
	return context.WithValue(ctx, organizationIDKey, organizationID)
}

// OrganizationIDFromContext obtém a organização do contexto
func OrganizationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(organizationIDKey).(string); ok {
		return id
	}
	return ""
}

// OrganizationID obtém a organização validada de um contexto do Gin
func OrganizationID(c *gin.Context) string {
	return c.GetString(ginKey)
}
