// Package orders concentra as regras de criação e atualização de pedidos.
package orders

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hugohenrick/food-backoffice/internal/domain/customer"
	"github.com/hugohenrick/food-backoffice/internal/domain/order"
	"github.com/hugohenrick/food-backoffice/internal/domain/payment"
	"github.com/hugohenrick/food-backoffice/internal/domain/plan"
	"github.com/hugohenrick/food-backoffice/internal/domain/product"
	"github.com/hugohenrick/food-backoffice/internal/service/notification"
	"github.com/hugohenrick/food-backoffice/pkg/apperror"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
	"github.com/hugohenrick/food-backoffice/pkg/logger"
)

// FlagChecker verifica funcionalidades liga/desliga do plano
type FlagChecker interface {
	CheckFlag(ctx context.Context, name plan.FeatureName) error
}

// Repositories agrupa os repositórios usados pelo serviço
type Repositories struct {
	Orders    order.Repository
	Payments  payment.Repository
	Products  product.Repository
	Customers customer.Repository
}

// PaymentInput é um pagamento lançado em um pedido
type PaymentInput struct {
	Method      payment.Method
	Amount      float64
	PaymentDate time.Time
}

// CalendarDay resume os pedidos de um dia de preparo
type CalendarDay struct {
	Date        string  `json:"date"`
	Orders      int     `json:"orders"`
	TotalAmount float64 `json:"total_amount"`
}

// Service implementa as operações de pedido de uma organização
type Service struct {
	organizationID string
	repos          Repositories
	gate           FlagChecker
	events         notification.Emitter
	logger         logger.Logger
	now            func() time.Time
}

// NewService cria o serviço de pedidos da organização
func NewService(organizationID string, repos Repositories, gate FlagChecker, events notification.Emitter, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		organizationID: organizationID,
		repos:          repos,
		gate:           gate,
		events:         events,
		logger:         log,
		now:            time.Now,
	}
}

// Create monta o pedido a partir do cadastro de produtos e recalcula o total
func (s *Service) Create(ctx context.Context, req order.RequestOrder) (*order.Order, error) {
	draft, err := s.buildDraft(ctx, req)
	if err != nil {
		return nil, err
	}
	if draft.Status == "" {
		draft.Status = order.StatusPending
	}
	if err := draft.Validate(); err != nil {
		return nil, apperror.Unprocessable(err.Error())
	}

	created, err := s.repos.Orders.Create(ctx, draft, order.ComputeTotal(draft.Products, draft.Additional, draft.Discount))
	if err != nil {
		return nil, err
	}

	s.logger.Info("Pedido criado", "organization_id", s.organizationID, "order_id", created.ID, "total_amount", created.TotalAmount)
	return created, nil
}

// CreateFastOrder registra a venda rápida do dia; só existe uma por dia
func (s *Service) CreateFastOrder(ctx context.Context, req order.RequestOrder) (*order.Order, error) {
	if req.OrderDate.IsZero() {
		req.OrderDate = s.now()
	}
	if req.Delivery.Type == "" {
		req.Delivery.Type = order.DeliveryTypeWithdrawal
	}

	exists, err := s.repos.Orders.ExistsFastOrderOn(ctx, req.OrderDate)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.BadRequest(order.FastOrderSameDayMessage)
	}

	draft, err := s.buildDraft(ctx, req)
	if err != nil {
		return nil, err
	}
	draft.IsFastOrder = true
	draft.Status = order.StatusDone
	if err := draft.Validate(); err != nil {
		return nil, apperror.Unprocessable(err.Error())
	}

	return s.repos.Orders.Create(ctx, draft, order.ComputeTotal(draft.Products, draft.Additional, draft.Discount))
}

// Update substitui os dados do pedido; produtos são novamente lidos do cadastro
func (s *Service) Update(ctx context.Context, id string, req order.RequestOrder) (*order.Order, error) {
	current, err := s.repos.Orders.SelectByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if current.Status == order.StatusCanceled {
		return nil, apperror.Conflict("pedido cancelado não pode ser alterado")
	}

	products, err := s.resolveProducts(ctx, req.Products)
	if err != nil {
		return nil, err
	}

	patch := order.Patch{
		CustomerID:  &req.CustomerID,
		Products:    products,
		Tags:        nonNilTags(req.Tags),
		Delivery:    &req.Delivery,
		Additional:  &req.Additional,
		Discount:    &req.Discount,
		Description: &req.Description,
	}
	if req.Status != "" {
		patch.Status = &req.Status
	}
	if !req.PreparationDate.IsZero() {
		patch.PreparationDate = &req.PreparationDate
	}

	updated, err := s.repos.Orders.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if req.Status == order.StatusDone && current.Status != order.StatusDone {
		s.emitDone(ctx, updated)
	}
	return updated, nil
}

// UpdateStatus muda apenas o status; repetir o status atual não tem efeito
func (s *Service) UpdateStatus(ctx context.Context, id string, status order.Status) (*order.Order, error) {
	if !status.IsValid() {
		return nil, apperror.Unprocessable(order.ErrInvalidStatus.Error())
	}

	current, err := s.repos.Orders.SelectByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return current, nil
	}
	if current.Status == order.StatusCanceled {
		return nil, apperror.Conflict("pedido cancelado não pode mudar de status")
	}

	updated, err := s.repos.Orders.Update(ctx, id, order.Patch{Status: &status})
	if err != nil {
		return nil, err
	}
	if status == order.StatusDone {
		s.emitDone(ctx, updated)
	}
	return updated, nil
}

// AddPayment lança um pagamento e recalcula o status de pagamento
func (s *Service) AddPayment(ctx context.Context, orderID string, fastOrder bool, in PaymentInput) (*order.Order, error) {
	o, err := s.repos.Orders.SelectByID(ctx, orderID, fastOrder)
	if err != nil {
		return nil, err
	}
	if o.Status == order.StatusCanceled {
		return nil, apperror.Conflict("pedido cancelado não recebe pagamentos")
	}

	if in.PaymentDate.IsZero() {
		in.PaymentDate = s.now()
	}
	p, err := payment.NewPayment(s.organizationID, o.ID, in.Method, in.Amount, in.PaymentDate)
	if err != nil {
		return nil, apperror.Unprocessable(err.Error())
	}
	if err := s.repos.Payments.Create(ctx, p); err != nil {
		return nil, err
	}

	return s.syncPaymentStatus(ctx, o.ID, fastOrder)
}

// paymentStatusAttempts limita as releituras quando outro pagamento chega em paralelo
const paymentStatusAttempts = 5

// syncPaymentStatus relê o pedido com os pagamentos persistidos e grava o status derivado.
// Cada gravação é seguida de nova leitura, então a última escrita sempre enxerga todos os
// pagamentos já inseridos e o status converge mesmo com lançamentos concorrentes.
func (s *Service) syncPaymentStatus(ctx context.Context, orderID string, fastOrder bool) (*order.Order, error) {
	var o *order.Order
	for attempt := 0; attempt < paymentStatusAttempts; attempt++ {
		var err error
		o, err = s.repos.Orders.SelectByID(ctx, orderID, fastOrder)
		if err != nil {
			return nil, err
		}

		status, overpaid := order.DerivePaymentStatus(o.TotalAmount, o.AmountPaid())
		if status == o.PaymentStatus {
			if overpaid {
				s.logger.Warn("pagamentos acima do valor do pedido, tratado como pago",
					"order_id", o.ID, "total_amount", o.TotalAmount, "paid", o.AmountPaid())
			}
			return o, nil
		}
		if err := s.repos.Orders.UpdatePaymentStatus(ctx, o.ID, status); err != nil {
			return nil, err
		}
	}

	s.logger.Warn("status de pagamento não estabilizou", "order_id", orderID, "attempts", paymentStatusAttempts)
	o.PaymentStatus, _ = order.DerivePaymentStatus(o.TotalAmount, o.AmountPaid())
	return o, nil
}

// Get busca um pedido comum
func (s *Service) Get(ctx context.Context, id string) (*order.Order, error) {
	return s.repos.Orders.SelectByID(ctx, id, false)
}

// GetFastOrder busca um pedido rápido
func (s *Service) GetFastOrder(ctx context.Context, id string) (*order.Order, error) {
	return s.repos.Orders.SelectByID(ctx, id, true)
}

// Delete remove logicamente o pedido
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repos.Orders.Delete(ctx, id)
}

// List retorna a página pedida e o total de pedidos que atendem aos filtros
func (s *Service) List(ctx context.Context, filters order.Filters, page domain.Pagination) ([]*order.Order, int, error) {
	items, err := s.repos.Orders.SelectAll(ctx, filters, page)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repos.Orders.SelectCount(ctx, filters)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Calendar agrupa os pedidos do mês por dia de preparo
func (s *Service) Calendar(ctx context.Context, month, year int) ([]CalendarDay, error) {
	if err := s.gate.CheckFlag(ctx, plan.FeatureDisplayCalendar); err != nil {
		return nil, err
	}

	rng := domain.MonthRange(month, year)
	items, err := s.repos.Orders.SelectAll(ctx, order.Filters{DateRange: &rng, IgnoreDefaultFilters: true}, domain.Pagination{})
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*CalendarDay)
	for _, o := range items {
		if o.Status == order.StatusCanceled {
			continue
		}
		key := o.PreparationDate.UTC().Format(order.FastOrderDayLayout)
		day, ok := byDay[key]
		if !ok {
			day = &CalendarDay{Date: key}
			byDay[key] = day
		}
		day.Orders++
		day.TotalAmount += o.TotalAmount
	}

	days := make([]CalendarDay, 0, len(byDay))
	for _, d := range byDay {
		d.TotalAmount = domain.Round2(d.TotalAmount)
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days, nil
}

func (s *Service) buildDraft(ctx context.Context, req order.RequestOrder) (*order.Order, error) {
	products, err := s.resolveProducts(ctx, req.Products)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	orderDate := req.OrderDate
	if orderDate.IsZero() {
		orderDate = now
	}
	preparationDate := req.PreparationDate
	if preparationDate.IsZero() {
		preparationDate = orderDate
	}

	return &order.Order{
		CustomerID:      req.CustomerID,
		Status:          req.Status,
		Products:        products,
		Tags:            nonNilTags(req.Tags),
		Delivery:        req.Delivery,
		PreparationDate: preparationDate.UTC(),
		OrderDate:       orderDate.UTC(),
		Additional:      req.Additional,
		Discount:        req.Discount,
		Description:     req.Description,
	}, nil
}

// resolveProducts tira o retrato dos produtos pedidos: nome, preço, custo e adicionais
// vêm sempre do cadastro, nunca da requisição.
func (s *Service) resolveProducts(ctx context.Context, requested []order.RequestedProduct) ([]order.StoredProduct, error) {
	if len(requested) == 0 {
		return nil, apperror.Unprocessable(order.ErrNoProducts.Error())
	}

	ids := make([]string, 0, len(requested))
	seen := make(map[string]bool, len(requested))
	for _, r := range requested {
		if !seen[r.ProductID] {
			seen[r.ProductID] = true
			ids = append(ids, r.ProductID)
		}
	}

	found, err := s.repos.Products.SelectByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	catalog := make(map[string]*product.Product, len(found))
	for _, p := range found {
		catalog[p.ID] = p
	}

	stored := make([]order.StoredProduct, 0, len(requested))
	for _, r := range requested {
		p, ok := catalog[r.ProductID]
		if !ok {
			return nil, apperror.NotFound("produto", r.ProductID)
		}
		if r.Quantity < 1 {
			return nil, apperror.Unprocessable(fmt.Sprintf("quantidade inválida para o produto %s", p.Name))
		}

		additionals, err := snapshotAdditionals(p, r.Additionals)
		if err != nil {
			return nil, err
		}

		stored = append(stored, order.StoredProduct{
			ProductID:   p.ID,
			Name:        p.Name,
			UnitPrice:   p.UnitPrice,
			UnitCost:    p.UnitCost,
			Quantity:    r.Quantity,
			Additionals: additionals,
		})
	}
	return stored, nil
}

// snapshotAdditionals valida os adicionais escolhidos contra os limites de cada grupo
func snapshotAdditionals(p *product.Product, requested []order.RequestedAdditional) ([]order.StoredAdditionalItem, error) {
	items := make([]order.StoredAdditionalItem, 0, len(requested))
	perGroup := make(map[string]int)

	for _, r := range requested {
		group, item, ok := p.FindAdditionalItem(r.ItemID)
		if !ok {
			return nil, apperror.Unprocessable(fmt.Sprintf("adicional %s não pertence ao produto %s", r.ItemID, p.Name))
		}
		if r.Quantity < 1 {
			return nil, apperror.Unprocessable(fmt.Sprintf("quantidade inválida para o adicional %s", item.Name))
		}
		perGroup[group.Name] += r.Quantity
		items = append(items, order.StoredAdditionalItem{
			ItemID:    item.ItemID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			UnitCost:  item.UnitCost,
			Quantity:  r.Quantity,
		})
	}

	for _, g := range p.Additionals {
		n := perGroup[g.Name]
		if n < g.MinQuantity {
			return nil, apperror.Unprocessable(fmt.Sprintf("escolha ao menos %d item(ns) em %s", g.MinQuantity, g.Name))
		}
		if g.MaxQuantity > 0 && n > g.MaxQuantity {
			return nil, apperror.Unprocessable(fmt.Sprintf("escolha no máximo %d item(ns) em %s", g.MaxQuantity, g.Name))
		}
	}
	return items, nil
}

func (s *Service) emitDone(ctx context.Context, o *order.Order) {
	if s.events == nil || o.CustomerID == "" {
		return
	}

	c, err := s.repos.Customers.SelectByID(ctx, o.CustomerID)
	if err != nil {
		s.logger.Warn("cliente do pedido não encontrado para aviso", "error", err, "order_id", o.ID)
		return
	}
	if c.Phone == nil {
		return
	}

	s.events.Emit(notification.Event{
		OrganizationID: s.organizationID,
		Kind:           notification.KindOrderDone,
		Phone:          c.Phone.String(),
		CustomerName:   c.Name,
		OrderID:        o.ID,
		At:             s.now().UTC(),
	})
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
