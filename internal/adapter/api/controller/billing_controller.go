package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/food-backoffice/internal/adapter/api/dto"
	"github.com/hugohenrick/food-backoffice/pkg/logger"
	"github.com/hugohenrick/food-backoffice/pkg/tenant"
)

// BillingController expõe os relatórios financeiros
type BillingController struct {
	services func(organizationID string) BillingService
	logger   logger.Logger
}

// NewBillingController cria uma nova instância de BillingController
func NewBillingController(services func(organizationID string) BillingService, log logger.Logger) *BillingController {
	return &BillingController{services: services, logger: log}
}

func (c *BillingController) service(ctx *gin.Context) BillingService {
	return c.services(tenant.OrganizationID(ctx))
}

// monthYear valida o filtro monthYear; responde 400 quando ausente ou mal formado
func monthYear(ctx *gin.Context) (month, year int, ok bool) {
	var q dto.MonthYearQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		respondBindError(ctx, err)
		return 0, 0, false
	}
	month, year, err := q.Parse()
	if err != nil {
		respondBindError(ctx, err)
		return 0, 0, false
	}
	return month, year, true
}

// Dashboard retorna o consolidado do mês
// @Summary Faturamento do mês
// @Tags billings
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param monthYear query string true "Mês no formato M/YYYY"
// @Success 200 {object} dto.Response{data=billing.Billing}
// @Success 204
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Router /billings/dashboard [get]
func (c *BillingController) Dashboard(ctx *gin.Context) {
	month, year, ok := monthYear(ctx)
	if !ok {
		return
	}

	b, err := c.service(ctx).GetBillingForDashboard(ctx.Request.Context(), month, year)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}
	if b == nil || b.IsEmpty() {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Faturamento do mês", b))
}

// Monthly retorna o histórico dos últimos meses
// @Summary Histórico mensal
// @Tags billings
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param lastMonths query int true "Quantidade de meses (1 a 12)"
// @Success 200 {object} dto.Response{data=[]billing.Billing}
// @Success 204
// @Failure 400 {object} dto.Response
// @Router /billings/monthly [get]
func (c *BillingController) Monthly(ctx *gin.Context) {
	var q dto.LastMonthsQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		respondBindError(ctx, err)
		return
	}

	list, err := c.service(ctx).GetMonthlyBillings(ctx.Request.Context(), q.LastMonths)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	respondCollection(ctx, "Histórico mensal", list)
}

// BestSellingProducts retorna o ranking de produtos do mês
// @Summary Produtos mais vendidos
// @Tags billings
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param monthYear query string true "Mês no formato M/YYYY"
// @Success 200 {object} dto.Response{data=[]billing.ProductRanking}
// @Success 204
// @Router /billings/products [get]
func (c *BillingController) BestSellingProducts(ctx *gin.Context) {
	month, year, ok := monthYear(ctx)
	if !ok {
		return
	}

	list, err := c.service(ctx).GetBestSellingProducts(ctx.Request.Context(), month, year)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	respondCollection(ctx, "Produtos mais vendidos", list)
}

// ExpensesCategories agrupa as despesas do mês por tag
// @Summary Despesas por categoria
// @Tags billings
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param monthYear query string true "Mês no formato M/YYYY"
// @Success 200 {object} dto.Response{data=[]billing.ExpenseCategory}
// @Success 204
// @Router /billings/expenses/categories [get]
func (c *BillingController) ExpensesCategories(ctx *gin.Context) {
	month, year, ok := monthYear(ctx)
	if !ok {
		return
	}

	list, err := c.service(ctx).GetExpansesCategories(ctx.Request.Context(), month, year)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	respondCollection(ctx, "Despesas por categoria", list)
}

// ProductsProfit retorna o lucro bruto por produto
// @Summary Lucro por produto
// @Tags billings
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param monthYear query string true "Mês no formato M/YYYY"
// @Success 200 {object} dto.Response{data=[]billing.ProductProfit}
// @Success 204
// @Router /billings/products/profit [get]
func (c *BillingController) ProductsProfit(ctx *gin.Context) {
	month, year, ok := monthYear(ctx)
	if !ok {
		return
	}

	list, err := c.service(ctx).GetProductsProfit(ctx.Request.Context(), month, year)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	respondCollection(ctx, "Lucro por produto", list)
}

// DailySales retorna as vendas diárias do mês
// @Summary Vendas diárias
// @Tags billings
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param monthYear query string true "Mês no formato M/YYYY"
// @Success 200 {object} dto.Response{data=[]billing.DailySale}
// @Router /billings/sales/daily [get]
func (c *BillingController) DailySales(ctx *gin.Context) {
	month, year, ok := monthYear(ctx)
	if !ok {
		return
	}

	list, err := c.service(ctx).GetDailySales(ctx.Request.Context(), month, year)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	respondCollection(ctx, "Vendas diárias", list)
}
