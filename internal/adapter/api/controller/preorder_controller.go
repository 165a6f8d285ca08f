package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/food-backoffice/internal/adapter/api/dto"
	"github.com/hugohenrick/food-backoffice/internal/domain/preorder"
	"github.com/hugohenrick/food-backoffice/pkg/logger"
	"github.com/hugohenrick/food-backoffice/pkg/tenant"
)

// PreOrderController gerencia as requisições relacionadas a pré-vendas
type PreOrderController struct {
	services func(organizationID string) PreOrderService
	logger   logger.Logger
}

// NewPreOrderController cria uma nova instância de PreOrderController
func NewPreOrderController(services func(organizationID string) PreOrderService, log logger.Logger) *PreOrderController {
	return &PreOrderController{services: services, logger: log}
}

func (c *PreOrderController) service(ctx *gin.Context) PreOrderService {
	return c.services(tenant.OrganizationID(ctx))
}

// Accept transforma a pré-venda em pedido
// @Summary Aceitar pré-venda
// @Description Cria o pedido da pré-venda. Repetir o aceite devolve o pedido já criado com status 200.
// @Tags pre-orders
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da pré-venda"
// @Success 201 {object} dto.Response{data=dto.OrderResponse}
// @Success 200 {object} dto.Response{data=dto.OrderResponse}
// @Failure 404 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Failure 422 {object} dto.Response
// @Router /pre_orders/{id}/accept [post]
func (c *PreOrderController) Accept(ctx *gin.Context) {
	o, created, err := c.service(ctx).Accept(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	if !created {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Pré-venda já aceita", dto.ToOrderResponse(o)))
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Pré-venda aceita, pedido criado", dto.ToOrderResponse(o)))
}

// Reject recusa a pré-venda
// @Summary Recusar pré-venda
// @Tags pre-orders
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da pré-venda"
// @Success 200 {object} dto.Response{data=dto.PreOrderResponse}
// @Failure 404 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /pre_orders/{id}/reject [post]
func (c *PreOrderController) Reject(ctx *gin.Context) {
	p, err := c.service(ctx).Reject(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Pré-venda recusada", dto.ToPreOrderResponse(p)))
}

// UpdateStatus altera o status da pré-venda
// @Summary Alterar status da pré-venda
// @Tags pre-orders
// @Accept json
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da pré-venda"
// @Param status body dto.PreOrderStatusRequest true "Novo status"
// @Success 200 {object} dto.Response{data=dto.PreOrderResponse}
// @Failure 409 {object} dto.Response
// @Failure 422 {object} dto.Response
// @Router /pre_orders/{id} [put]
func (c *PreOrderController) UpdateStatus(ctx *gin.Context) {
	var req dto.PreOrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	p, err := c.service(ctx).UpdateStatus(ctx.Request.Context(), ctx.Param("id"), req.Status, req.OrderID)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Status da pré-venda atualizado", dto.ToPreOrderResponse(p)))
}

// List lista as pré-vendas
// @Summary Listar pré-vendas
// @Tags pre-orders
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param status query string false "PENDING, ACCEPTED ou REJECTED"
// @Param page query int false "Página"
// @Param pageSize query int false "Itens por página"
// @Success 200 {object} dto.Response{data=[]dto.PreOrderResponse}
// @Success 204
// @Failure 422 {object} dto.Response
// @Router /pre_orders [get]
func (c *PreOrderController) List(ctx *gin.Context) {
	var q dto.PreOrderQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		respondBindError(ctx, err)
		return
	}

	list, err := c.service(ctx).List(ctx.Request.Context(), preorder.Status(q.Status), q.Pagination())
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	respondCollection(ctx, "Pré-vendas encontradas", dto.ToPreOrderListResponse(list))
}

// Get retorna uma pré-venda pelo ID
// @Summary Buscar pré-venda
// @Tags pre-orders
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da pré-venda"
// @Success 200 {object} dto.Response{data=dto.PreOrderResponse}
// @Failure 404 {object} dto.Response
// @Router /pre_orders/{id} [get]
func (c *PreOrderController) Get(ctx *gin.Context) {
	p, err := c.service(ctx).Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Pré-venda encontrada", dto.ToPreOrderResponse(p)))
}
