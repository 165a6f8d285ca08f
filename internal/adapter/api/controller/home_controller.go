package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/food-backoffice/internal/adapter/api/dto"
	"github.com/hugohenrick/food-backoffice/pkg/logger"
	"github.com/hugohenrick/food-backoffice/pkg/tenant"
)

// HomeController expõe os contadores da tela inicial
type HomeController struct {
	services func(organizationID string) HomeService
	logger   logger.Logger
}

// NewHomeController cria uma nova instância de HomeController
func NewHomeController(services func(organizationID string) HomeService, log logger.Logger) *HomeController {
	return &HomeController{services: services, logger: log}
}

// Metrics retorna os contadores da home
// @Summary Métricas da home
// @Tags home
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.Response{data=home.Metrics}
// @Router /metrics/home [get]
func (c *HomeController) Metrics(ctx *gin.Context) {
	m, err := c.services(tenant.OrganizationID(ctx)).GetMetrics(ctx.Request.Context())
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Métricas da home", m))
}
