// Package home monta os contadores da tela inicial do back-office.
package home

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hugohenrick/food-backoffice/internal/domain/customer"
	"github.com/hugohenrick/food-backoffice/internal/domain/order"
	"github.com/hugohenrick/food-backoffice/internal/domain/plan"
	"github.com/hugohenrick/food-backoffice/internal/domain/preorder"
	"github.com/hugohenrick/food-backoffice/internal/domain/product"
	"github.com/hugohenrick/food-backoffice/internal/infrastructure/cache"
	"github.com/hugohenrick/food-backoffice/internal/service/planfeature"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
	"github.com/hugohenrick/food-backoffice/pkg/logger"
)

// Metrics são os contadores exibidos na home
type Metrics struct {
	PendingPreOrders int       `json:"pending_pre_orders"`
	OpenOrders       int       `json:"open_orders"`
	OrdersForToday   int       `json:"orders_for_today"`
	Customers        int       `json:"customers"`
	Products         int       `json:"products"`
	GeneratedAt      time.Time `json:"generated_at"`
}

// Warmer aquece o cache de funcionalidades do plano em segundo plano
type Warmer interface {
	WarmAsync(names ...plan.FeatureName)
}

// Service calcula as métricas da home de uma organização
type Service struct {
	organizationID string
	preOrders      preorder.Repository
	orders         order.Repository
	customers      customer.Repository
	products       product.Repository
	warmer         Warmer
	cache          cache.Cache
	logger         logger.Logger
	now            func() time.Time
}

// NewService cria o serviço da home
func NewService(organizationID string, preOrders preorder.Repository, orders order.Repository, customers customer.Repository,
	products product.Repository, warmer Warmer, c cache.Cache, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		organizationID: organizationID,
		preOrders:      preOrders,
		orders:         orders,
		customers:      customers,
		products:       products,
		warmer:         warmer,
		cache:          c,
		logger:         log,
		now:            time.Now,
	}
}

// GetMetrics devolve os contadores, do cache quando possível.
// Também dispara o aquecimento das cotas do plano, que costumam ser consultadas logo em seguida.
func (s *Service) GetMetrics(ctx context.Context) (*Metrics, error) {
	if s.warmer != nil {
		s.warmer.WarmAsync(planfeature.QuotaFeatures...)
	}

	key := cache.HomeMetricsKey(s.organizationID)
	if raw, ok := s.cache.Get(ctx, key); ok {
		var m Metrics
		if err := json.Unmarshal([]byte(raw), &m); err == nil {
			return &m, nil
		}
		s.logger.Warn("métricas da home em cache ilegíveis, recalculando", "key", key)
	}

	m, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(m); err == nil {
		s.cache.Set(ctx, key, string(raw), cache.HomeMetricsTTL)
	}
	return m, nil
}

func (s *Service) compute(ctx context.Context) (*Metrics, error) {
	now := s.now().UTC()
	m := &Metrics{GeneratedAt: now}
	var err error

	if m.PendingPreOrders, err = s.preOrders.CountByStatus(ctx, preorder.StatusPending); err != nil {
		return nil, err
	}
	if m.OpenOrders, err = s.orders.SelectCount(ctx, order.Filters{}); err != nil {
		return nil, err
	}
	today := domain.DayRange(now)
	if m.OrdersForToday, err = s.orders.SelectCount(ctx, order.Filters{DateRange: &today, IgnoreDefaultFilters: true}); err != nil {
		return nil, err
	}
	if m.Customers, err = s.customers.Count(ctx); err != nil {
		return nil, err
	}
	if m.Products, err = s.products.Count(ctx); err != nil {
		return nil, err
	}
	return m, nil
}
