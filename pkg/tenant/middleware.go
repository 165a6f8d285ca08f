package tenant

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/food-backoffice/internal/adapter/api/dto"
	"github.com/hugohenrick/food-backoffice/pkg/logger"
)

// Validator define a interface para validação da organização
type Validator interface {
	ValidateOrganization(ctx context.Context, organizationID string) (bool, error)
}

// Middleware exige o cabeçalho x-organization e guarda a organização validada no contexto
func Middleware(validator Validator, log logger.Logger) gin.HandlerFunc {
	if log == nil {
		log = logger.Nop()
	}

	return func(c *gin.Context) {
		organizationID := c.GetHeader(HeaderName)
		if organizationID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(ErrOrganizationNotSpecified.Error()))
			return
		}

		valid, err := validator.ValidateOrganization(c.Request.Context(), organizationID)
		if err != nil {
			log.Error("erro ao validar organização", "organization_id", organizationID, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("erro interno"))
			return
		}

		if !valid {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(ErrOrganizationNotFound.Error()))
			return
		}

		c.Set(ginKey, organizationID)
		c.Request = c.Request.WithContext(WithOrganizationID(c.Request.Context(), organizationID))

		c.Next()
	}
}
