// Package preorders transforma pré-vendas pendentes em pedidos ou as recusa.
//
// Máquina de estados: PENDING → ACCEPTED (gera pedido) e PENDING → REJECTED.
// Os dois destinos são finais; repetir a mesma transição devolve o resultado já gravado.
package preorders

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/food-backoffice/internal/domain/customer"
	"github.com/hugohenrick/food-backoffice/internal/domain/order"
	"github.com/hugohenrick/food-backoffice/internal/domain/plan"
	"github.com/hugohenrick/food-backoffice/internal/domain/preorder"
	"github.com/hugohenrick/food-backoffice/internal/infrastructure/cache"
	"github.com/hugohenrick/food-backoffice/internal/infrastructure/metrics"
	"github.com/hugohenrick/food-backoffice/internal/service/notification"
	"github.com/hugohenrick/food-backoffice/internal/service/planfeature"
	"github.com/hugohenrick/food-backoffice/pkg/apperror"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
	"github.com/hugohenrick/food-backoffice/pkg/logger"
)

// OrderService é a parte do serviço de pedidos usada no aceite
type OrderService interface {
	Create(ctx context.Context, req order.RequestOrder) (*order.Order, error)
	Get(ctx context.Context, id string) (*order.Order, error)
	Delete(ctx context.Context, id string) error
}

// QuotaChecker aplica as cotas do plano ao cadastrar clientes novos
type QuotaChecker interface {
	CheckQuota(ctx context.Context, name plan.FeatureName, current int) (*planfeature.Decision, error)
}

// Service executa as transições de pré-venda de uma organização
type Service struct {
	organizationID string
	preOrders      preorder.Repository
	customers      customer.Repository
	orders         OrderService
	gate           QuotaChecker
	events         notification.Emitter
	cache          cache.Cache
	logger         logger.Logger
	now            func() time.Time
}

// NewService cria o serviço de pré-vendas da organização
func NewService(organizationID string, preOrders preorder.Repository, customers customer.Repository,
	orders OrderService, gate QuotaChecker, events notification.Emitter, c cache.Cache, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		organizationID: organizationID,
		preOrders:      preOrders,
		customers:      customers,
		orders:         orders,
		gate:           gate,
		events:         events,
		cache:          c,
		logger:         log,
		now:            time.Now,
	}
}

// Get busca uma pré-venda
func (s *Service) Get(ctx context.Context, id string) (*preorder.PreOrder, error) {
	return s.preOrders.SelectByID(ctx, id)
}

// List lista as pré-vendas; status vazio traz todas
func (s *Service) List(ctx context.Context, status preorder.Status, page domain.Pagination) ([]*preorder.PreOrder, error) {
	if status != "" && !status.IsValid() {
		return nil, apperror.Unprocessable(fmt.Sprintf("status de pré-venda inválido: %s", status))
	}
	return s.preOrders.SelectAll(ctx, status, page)
}

// Reject recusa a pré-venda
func (s *Service) Reject(ctx context.Context, id string) (*preorder.PreOrder, error) {
	return s.UpdateStatus(ctx, id, preorder.StatusRejected, "")
}

// UpdateStatus grava o novo status. Repetir o status atual não altera nada nem gera aviso;
// sair de um status final retorna Conflict.
func (s *Service) UpdateStatus(ctx context.Context, id string, status preorder.Status, orderID string) (*preorder.PreOrder, error) {
	if !status.IsValid() {
		return nil, apperror.Unprocessable(fmt.Sprintf("status de pré-venda inválido: %s", status))
	}

	current, err := s.preOrders.SelectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return current, nil
	}
	if current.Status.IsTerminal() {
		return nil, apperror.Conflict(fmt.Sprintf("pré-venda %s já está %s", id, current.Status))
	}

	switch status {
	case preorder.StatusPending:
		return current, nil
	case preorder.StatusAccepted:
		if orderID == "" {
			return nil, apperror.Unprocessable("aceite exige o pedido gerado; use o endpoint de aceite")
		}
		if _, err := s.orders.Get(ctx, orderID); err != nil {
			if apperror.IsNotFound(err) {
				return nil, apperror.Unprocessable(fmt.Sprintf("pedido %s não existe", orderID))
			}
			return nil, err
		}
	case preorder.StatusRejected:
		orderID = ""
	}

	updated, err := s.preOrders.UpdateStatus(ctx, id, status, orderID)
	if err != nil {
		return nil, err
	}
	s.transitioned(ctx, updated)
	return updated, nil
}

// Accept materializa a pré-venda como pedido. Retorna created=false quando a pré-venda
// já estava aceita e o pedido existente foi devolvido.
func (s *Service) Accept(ctx context.Context, id string) (*order.Order, bool, error) {
	p, err := s.preOrders.SelectByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	switch p.Status {
	case preorder.StatusAccepted:
		return s.linkedOrder(ctx, p)
	case preorder.StatusRejected:
		return nil, false, apperror.Conflict(fmt.Sprintf("pré-venda %s já está %s", id, p.Status))
	}

	if err := validate(p); err != nil {
		return nil, false, err
	}

	c, err := s.resolveCustomer(ctx, p)
	if err != nil {
		return nil, false, err
	}

	o, err := s.orders.Create(ctx, s.requestOrder(p, c.ID))
	if err != nil {
		return nil, false, err
	}

	updated, err := s.preOrders.UpdateStatus(ctx, id, preorder.StatusAccepted, o.ID)
	if err != nil {
		if apperror.IsConflict(err) {
			return s.lostRace(ctx, id, o)
		}
		return nil, false, err
	}

	s.transitioned(ctx, updated)
	return o, true, nil
}

// linkedOrder devolve o pedido gerado por um aceite anterior
func (s *Service) linkedOrder(ctx context.Context, p *preorder.PreOrder) (*order.Order, bool, error) {
	if p.OrderID == "" {
		return nil, false, apperror.Conflict(fmt.Sprintf("pré-venda %s aceita sem pedido vinculado", p.ID))
	}
	o, err := s.orders.Get(ctx, p.OrderID)
	if err != nil {
		return nil, false, err
	}
	return o, false, nil
}

// lostRace desfaz o pedido criado quando outro aceite gravou primeiro
func (s *Service) lostRace(ctx context.Context, id string, ours *order.Order) (*order.Order, bool, error) {
	if err := s.orders.Delete(ctx, ours.ID); err != nil {
		s.logger.Error("erro ao descartar pedido de aceite concorrente", "error", err, "order_id", ours.ID)
	}

	p, err := s.preOrders.SelectByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if p.Status != preorder.StatusAccepted {
		return nil, false, apperror.Conflict(fmt.Sprintf("pré-venda %s já está %s", id, p.Status))
	}
	return s.linkedOrder(ctx, p)
}

func validate(p *preorder.PreOrder) error {
	if len(p.Items) == 0 {
		return apperror.Unprocessable("pré-venda sem itens")
	}
	if p.Delivery.Type == order.DeliveryTypeDelivery && p.Delivery.Address == nil {
		return apperror.Unprocessable("pré-venda para entrega sem endereço")
	}
	if !p.Customer.Phone.Valid() {
		return apperror.Unprocessable("telefone do cliente da pré-venda inválido")
	}
	return nil
}

// checkCustomerQuota conta o cliente criado no aceite na cota MAX_CUSTOMERS, como o cadastro manual
func (s *Service) checkCustomerQuota(ctx context.Context, p *preorder.PreOrder) error {
	if s.gate == nil {
		return nil
	}
	current, err := s.customers.Count(ctx)
	if err != nil {
		return fmt.Errorf("erro ao contar clientes: %w", err)
	}
	decision, err := s.gate.CheckQuota(ctx, plan.FeatureMaxCustomers, current)
	if err != nil {
		return err
	}
	if decision.Overage {
		s.logger.Info("cliente da pré-venda acima da cota do plano",
			"pre_order_id", p.ID, "current", current, "limit", decision.Limit)
	}
	return nil
}

// resolveCustomer busca o cliente pelo telefone ou o cria. Se outro processo criar o mesmo
// telefone no meio do caminho, a busca é repetida uma única vez.
func (s *Service) resolveCustomer(ctx context.Context, p *preorder.PreOrder) (*customer.Customer, error) {
	c, err := s.customers.SelectByPhone(ctx, p.Customer.Phone)
	if err == nil {
		return c, s.mergeAddress(ctx, c, p.Delivery.Address)
	}
	if !apperror.IsNotFound(err) {
		return nil, err
	}

	if err := s.checkCustomerQuota(ctx, p); err != nil {
		return nil, err
	}

	phone := p.Customer.Phone
	c, err = customer.NewCustomer(s.organizationID, p.Customer.Name, &phone, "")
	if err != nil {
		return nil, apperror.Unprocessable(err.Error())
	}
	if p.Delivery.Address != nil {
		c.Addresses = []customer.Address{*p.Delivery.Address}
	}

	err = s.customers.Create(ctx, c)
	if err == nil {
		return c, nil
	}
	if !apperror.IsConflict(err) {
		return nil, err
	}

	s.logger.Warn("cliente da pré-venda criado em paralelo, repetindo busca", "pre_order_id", p.ID)
	c, err = s.customers.SelectByPhone(ctx, p.Customer.Phone)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.Unprocessable("não foi possível identificar o cliente da pré-venda")
		}
		return nil, err
	}
	return c, s.mergeAddress(ctx, c, p.Delivery.Address)
}

func (s *Service) mergeAddress(ctx context.Context, c *customer.Customer, addr *customer.Address) error {
	if addr == nil || !c.MergeAddress(*addr) {
		return nil
	}
	return s.customers.Update(ctx, c)
}

// requestOrder converte os itens: ofertas viram um produto por item interno,
// com a quantidade multiplicada pela quantidade da oferta
func (s *Service) requestOrder(p *preorder.PreOrder, customerID string) order.RequestOrder {
	products := make([]order.RequestedProduct, 0, len(p.Items))
	for _, item := range p.Items {
		switch item.Kind {
		case preorder.ItemKindOffer:
			for _, inner := range item.Items {
				products = append(products, order.RequestedProduct{
					ProductID:   inner.ItemID,
					Quantity:    inner.Quantity * item.Quantity,
					Additionals: requestedAdditionals(inner.Additionals),
				})
			}
		default:
			products = append(products, order.RequestedProduct{
				ProductID:   item.ItemID,
				Quantity:    item.Quantity,
				Additionals: requestedAdditionals(item.Additionals),
			})
		}
	}

	now := s.now().UTC()
	return order.RequestOrder{
		CustomerID:      customerID,
		Status:          order.StatusPending,
		Products:        products,
		Tags:            []string{},
		Delivery:        p.Delivery,
		PreparationDate: now,
		OrderDate:       now,
		Discount:        0,
		Description:     p.Observation,
	}
}

func requestedAdditionals(additionals []preorder.Additional) []order.RequestedAdditional {
	out := make([]order.RequestedAdditional, 0, len(additionals))
	for _, a := range additionals {
		out = append(out, order.RequestedAdditional{ItemID: a.ItemID, Quantity: a.Quantity})
	}
	return out
}

// transitioned registra a transição, invalida as métricas da home e avisa o cliente
func (s *Service) transitioned(ctx context.Context, p *preorder.PreOrder) {
	metrics.PreOrderTransitions.WithLabelValues(string(p.Status)).Inc()
	if s.cache != nil {
		s.cache.Delete(ctx, cache.HomeMetricsKey(s.organizationID))
	}

	s.logger.Info("pré-venda atualizada", "pre_order_id", p.ID, "status", p.Status, "order_id", p.OrderID)

	kind := notification.KindPreOrderRejected
	if p.Status == preorder.StatusAccepted {
		kind = notification.KindPreOrderAccepted
	}
	if s.events == nil {
		return
	}
	s.events.Emit(notification.Event{
		OrganizationID: s.organizationID,
		Kind:           kind,
		Phone:          p.Customer.Phone.String(),
		CustomerName:   p.Customer.Name,
		Code:           p.Code,
		OrderID:        p.OrderID,
		At:             s.now().UTC(),
	})
}
