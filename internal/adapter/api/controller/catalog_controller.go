package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/food-backoffice/internal/adapter/api/dto"
	"github.com/hugohenrick/food-backoffice/pkg/logger"
	"github.com/hugohenrick/food-backoffice/pkg/tenant"
)

// CatalogController gerencia produtos, tags, clientes, despesas e ofertas
type CatalogController struct {
	services func(organizationID string) CatalogService
	logger   logger.Logger
}

// NewCatalogController cria uma nova instância de CatalogController
func NewCatalogController(services func(organizationID string) CatalogService, log logger.Logger) *CatalogController {
	return &CatalogController{services: services, logger: log}
}

func (c *CatalogController) service(ctx *gin.Context) CatalogService {
	return c.services(tenant.OrganizationID(ctx))
}

// CreateProduct cadastra um produto
// @Summary Criar produto
// @Description Respeita a cota MAX_PRODUCTS do plano
// @Tags products
// @Accept json
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.Response{data=dto.ProductResponse}
// @Failure 403 {object} dto.Response
// @Failure 422 {object} dto.Response
// @Router /products [post]
func (c *CatalogController) CreateProduct(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	p, err := c.service(ctx).CreateProduct(ctx.Request.Context(), req.ToInput())
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Produto criado com sucesso", dto.ToProductResponse(p)))
}

// ListProducts lista os produtos
// @Summary Listar produtos
// @Tags products
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param q query string false "Busca por nome"
// @Param page query int false "Página"
// @Param pageSize query int false "Itens por página"
// @Success 200 {object} dto.Response{data=[]dto.ProductResponse}
// @Success 204
// @Router /products [get]
func (c *CatalogController) ListProducts(ctx *gin.Context) {
	var q dto.SearchQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		respondBindError(ctx, err)
		return
	}

	list, err := c.service(ctx).ListProducts(ctx.Request.Context(), q.Query, q.Pagination())
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	respondCollection(ctx, "Produtos encontrados", dto.ToProductListResponse(list))
}

// CreateTag cadastra uma tag
// @Summary Criar tag
// @Description Respeita a cota MAX_TAGS do plano
// @Tags tags
// @Accept json
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param tag body dto.TagRequest true "Dados da tag"
// @Success 201 {object} dto.Response{data=dto.TagResponse}
// @Failure 403 {object} dto.Response
// @Router /tags [post]
func (c *CatalogController) CreateTag(ctx *gin.Context) {
	var req dto.TagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	t, err := c.service(ctx).CreateTag(ctx.Request.Context(), req.Name, req.Color)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Tag criada com sucesso", dto.ToTagResponse(t)))
}

// CreateCustomer cadastra um cliente
// @Summary Criar cliente
// @Description Respeita a cota MAX_CUSTOMERS do plano; telefone e email são únicos na organização
// @Tags customers
// @Accept json
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param customer body dto.CustomerRequest true "Dados do cliente"
// @Success 201 {object} dto.Response{data=dto.CustomerResponse}
// @Failure 403 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /customers [post]
func (c *CatalogController) CreateCustomer(ctx *gin.Context) {
	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	customer, err := c.service(ctx).CreateCustomer(ctx.Request.Context(), req.ToInput())
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Cliente criado com sucesso", dto.ToCustomerResponse(customer)))
}

// ListCustomers lista os clientes
// @Summary Listar clientes
// @Tags customers
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param q query string false "Busca por nome, telefone ou email"
// @Param page query int false "Página"
// @Param pageSize query int false "Itens por página"
// @Success 200 {object} dto.Response{data=[]dto.CustomerResponse}
// @Success 204
// @Router /customers [get]
func (c *CatalogController) ListCustomers(ctx *gin.Context) {
	var q dto.SearchQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		respondBindError(ctx, err)
		return
	}

	list, err := c.service(ctx).ListCustomers(ctx.Request.Context(), q.Query, q.Pagination())
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	respondCollection(ctx, "Clientes encontrados", dto.ToCustomerListResponse(list))
}

// CreateExpense cadastra uma despesa
// @Summary Criar despesa
// @Description Respeita a cota mensal MAX_EXPANSES do plano
// @Tags expenses
// @Accept json
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param expense body dto.ExpenseRequest true "Dados da despesa"
// @Success 201 {object} dto.Response{data=dto.ExpenseResponse}
// @Failure 403 {object} dto.Response
// @Router /expenses [post]
func (c *CatalogController) CreateExpense(ctx *gin.Context) {
	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	e, err := c.service(ctx).CreateExpense(ctx.Request.Context(), req.ToInput())
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Despesa criada com sucesso", dto.ToExpenseResponse(e)))
}

// ListExpenses lista as despesas
// @Summary Listar despesas
// @Tags expenses
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param q query string false "Busca por nome"
// @Param monthYear query string false "Mês no formato M/YYYY"
// @Param tags query []string false "Tags"
// @Param page query int false "Página"
// @Param pageSize query int false "Itens por página"
// @Success 200 {object} dto.Response{data=[]dto.ExpenseResponse}
// @Success 204
// @Router /expenses [get]
func (c *CatalogController) ListExpenses(ctx *gin.Context) {
	var q dto.ExpenseQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		respondBindError(ctx, err)
		return
	}

	list, err := c.service(ctx).ListExpenses(ctx.Request.Context(), q.ToFilters(), q.Pagination())
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	respondCollection(ctx, "Despesas encontradas", dto.ToExpenseListResponse(list))
}

// DeleteExpense remove logicamente a despesa
// @Summary Remover despesa
// @Tags expenses
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da despesa"
// @Success 204
// @Failure 404 {object} dto.Response
// @Router /expenses/{id} [delete]
func (c *CatalogController) DeleteExpense(ctx *gin.Context) {
	if err := c.service(ctx).DeleteExpense(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListOffers lista as ofertas vigentes do cardápio
// @Summary Listar ofertas
// @Description Exige a funcionalidade DISPLAY_MENU do plano
// @Tags offers
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param all query bool false "Inclui ofertas ocultas"
// @Success 200 {object} dto.Response{data=[]dto.OfferResponse}
// @Success 204
// @Failure 401 {object} dto.Response
// @Router /offers [get]
func (c *CatalogController) ListOffers(ctx *gin.Context) {
	var q struct {
		dto.PageQuery
		All bool `form:"all"`
	}
	if err := ctx.ShouldBindQuery(&q); err != nil {
		respondBindError(ctx, err)
		return
	}

	list, err := c.service(ctx).ListOffers(ctx.Request.Context(), !q.All, q.Pagination())
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	respondCollection(ctx, "Ofertas encontradas", dto.ToOfferListResponse(list))
}
