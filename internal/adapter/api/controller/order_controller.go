package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/food-backoffice/internal/adapter/api/dto"
	"github.com/hugohenrick/food-backoffice/pkg/logger"
	"github.com/hugohenrick/food-backoffice/pkg/tenant"
)

// OrderController gerencia as requisições relacionadas a pedidos
type OrderController struct {
	services func(organizationID string) OrderService
	logger   logger.Logger
}

// NewOrderController cria uma nova instância de OrderController
func NewOrderController(services func(organizationID string) OrderService, log logger.Logger) *OrderController {
	return &OrderController{services: services, logger: log}
}

func (c *OrderController) service(ctx *gin.Context) OrderService {
	return c.services(tenant.OrganizationID(ctx))
}

// Create cria um novo pedido
// @Summary Criar pedido
// @Description Cria um pedido; preços e custos são lidos do cadastro de produtos
// @Tags orders
// @Accept json
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param order body dto.OrderRequest true "Dados do pedido"
// @Success 201 {object} dto.Response{data=dto.OrderResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Failure 422 {object} dto.Response
// @Router /orders [post]
func (c *OrderController) Create(ctx *gin.Context) {
	var req dto.OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	o, err := c.service(ctx).Create(ctx.Request.Context(), req.ToRequestOrder())
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Pedido criado com sucesso", dto.ToOrderResponse(o)))
}

// CreateFastOrder registra a venda rápida do dia
// @Summary Criar pedido rápido
// @Description Registra a venda de balcão do dia; só é permitido um pedido rápido por dia
// @Tags orders
// @Accept json
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param order body dto.OrderRequest true "Dados do pedido"
// @Success 201 {object} dto.Response{data=dto.OrderResponse}
// @Failure 400 {object} dto.Response
// @Router /orders/fast [post]
func (c *OrderController) CreateFastOrder(ctx *gin.Context) {
	var req dto.OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	o, err := c.service(ctx).CreateFastOrder(ctx.Request.Context(), req.ToRequestOrder())
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Pedido rápido criado com sucesso", dto.ToOrderResponse(o)))
}

// Get retorna um pedido pelo ID
// @Summary Buscar pedido
// @Tags orders
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do pedido"
// @Success 200 {object} dto.Response{data=dto.OrderResponse}
// @Failure 404 {object} dto.Response
// @Router /orders/{id} [get]
func (c *OrderController) Get(ctx *gin.Context) {
	o, err := c.service(ctx).Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Pedido encontrado", dto.ToOrderResponse(o)))
}

// GetFastOrder retorna um pedido rápido pelo ID
// @Summary Buscar pedido rápido
// @Tags orders
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do pedido rápido"
// @Success 200 {object} dto.Response{data=dto.OrderResponse}
// @Failure 404 {object} dto.Response
// @Router /orders/fast/{id} [get]
func (c *OrderController) GetFastOrder(ctx *gin.Context) {
	o, err := c.service(ctx).GetFastOrder(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Pedido rápido encontrado", dto.ToOrderResponse(o)))
}

// List lista os pedidos com filtros e paginação
// @Summary Listar pedidos
// @Description Sem filtros, pedidos entregues e pagos ficam de fora; use all=true para incluí-los
// @Tags orders
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param pageSize query int false "Itens por página"
// @Param status query string false "Status do pedido"
// @Param paymentStatus query []string false "Status de pagamento"
// @Param from query string false "Data de preparo inicial (YYYY-MM-DD)"
// @Param to query string false "Data de preparo final (YYYY-MM-DD)"
// @Param orderBy query string false "Campo de ordenação; prefixo - para decrescente"
// @Success 200 {object} dto.Response{data=dto.ListResponse[dto.OrderResponse]}
// @Success 204
// @Router /orders [get]
func (c *OrderController) List(ctx *gin.Context) {
	var q dto.OrderQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		respondBindError(ctx, err)
		return
	}

	page := q.Pagination()
	list, total, err := c.service(ctx).List(ctx.Request.Context(), q.ToFilters(), page)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}
	if len(list) == 0 {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Pedidos encontrados",
		dto.NewListResponse(dto.ToOrderListResponse(list), total, page)))
}

// Calendar agrupa os pedidos do mês por dia de preparo
// @Summary Calendário de pedidos
// @Tags orders
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param monthYear query string true "Mês no formato M/YYYY"
// @Success 200 {object} dto.Response{data=[]orders.CalendarDay}
// @Success 204
// @Failure 401 {object} dto.Response
// @Router /orders/calendar [get]
func (c *OrderController) Calendar(ctx *gin.Context) {
	var q dto.MonthYearQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		respondBindError(ctx, err)
		return
	}
	month, year, err := q.Parse()
	if err != nil {
		respondBindError(ctx, err)
		return
	}

	days, err := c.service(ctx).Calendar(ctx.Request.Context(), month, year)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	respondCollection(ctx, "Calendário de pedidos", days)
}

// Update substitui os dados do pedido
// @Summary Atualizar pedido
// @Tags orders
// @Accept json
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do pedido"
// @Param order body dto.OrderRequest true "Dados do pedido"
// @Success 200 {object} dto.Response{data=dto.OrderResponse}
// @Failure 404 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /orders/{id} [put]
func (c *OrderController) Update(ctx *gin.Context) {
	var req dto.OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	o, err := c.service(ctx).Update(ctx.Request.Context(), ctx.Param("id"), req.ToRequestOrder())
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Pedido atualizado com sucesso", dto.ToOrderResponse(o)))
}

// UpdateStatus altera a etapa de preparo do pedido
// @Summary Alterar status do pedido
// @Tags orders
// @Accept json
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do pedido"
// @Param status body dto.OrderStatusRequest true "Novo status"
// @Success 200 {object} dto.Response{data=dto.OrderResponse}
// @Failure 409 {object} dto.Response
// @Failure 422 {object} dto.Response
// @Router /orders/{id}/status [patch]
func (c *OrderController) UpdateStatus(ctx *gin.Context) {
	var req dto.OrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	o, err := c.service(ctx).UpdateStatus(ctx.Request.Context(), ctx.Param("id"), req.Status)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Status do pedido atualizado", dto.ToOrderResponse(o)))
}

// AddPayment lança um pagamento no pedido
// @Summary Registrar pagamento
// @Tags orders
// @Accept json
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do pedido"
// @Param payment body dto.PaymentRequest true "Pagamento"
// @Success 201 {object} dto.Response{data=dto.OrderResponse}
// @Failure 404 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /orders/{id}/payments [post]
func (c *OrderController) AddPayment(ctx *gin.Context) {
	c.addPayment(ctx, false)
}

// AddFastOrderPayment lança um pagamento no pedido rápido
// @Summary Registrar pagamento do pedido rápido
// @Tags orders
// @Accept json
// @Produce json
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do pedido rápido"
// @Param payment body dto.PaymentRequest true "Pagamento"
// @Success 201 {object} dto.Response{data=dto.OrderResponse}
// @Router /orders/fast/{id}/payments [post]
func (c *OrderController) AddFastOrderPayment(ctx *gin.Context) {
	c.addPayment(ctx, true)
}

func (c *OrderController) addPayment(ctx *gin.Context, fastOrder bool) {
	var req dto.PaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	o, err := c.service(ctx).AddPayment(ctx.Request.Context(), ctx.Param("id"), fastOrder, req.ToPaymentInput())
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Pagamento registrado", dto.ToOrderResponse(o)))
}

// Delete remove logicamente o pedido
// @Summary Remover pedido
// @Tags orders
// @Param x-organization header string true "ID da organização"
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do pedido"
// @Success 204
// @Failure 404 {object} dto.Response
// @Router /orders/{id} [delete]
func (c *OrderController) Delete(ctx *gin.Context) {
	if err := c.service(ctx).Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
