package home

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/food-backoffice/internal/domain/order"
	"github.com/hugohenrick/food-backoffice/internal/domain/plan"
	"github.com/hugohenrick/food-backoffice/internal/domain/preorder"
	"github.com/hugohenrick/food-backoffice/internal/infrastructure/cache"
	"github.com/hugohenrick/food-backoffice/internal/mocks"
)

var fixedNow = time.Date(2024, 7, 1, 15, 0, 0, 0, time.UTC)

type warmerSpy struct {
	mu    sync.Mutex
	calls [][]plan.FeatureName
}

func (w *warmerSpy) WarmAsync(names ...plan.FeatureName) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls = append(w.calls, names)
}

type fixture struct {
	svc       *Service
	preOrders *mocks.PreOrderRepository
	orders    *mocks.OrderRepository
	customers *mocks.CustomerRepository
	products  *mocks.ProductRepository
	warmer    *warmerSpy
	redis     *miniredis.Miniredis
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	f := &fixture{
		preOrders: mocks.NewPreOrderRepository(t),
		orders:    mocks.NewOrderRepository(t),
		customers: mocks.NewCustomerRepository(t),
		products:  mocks.NewProductRepository(t),
		warmer:    &warmerSpy{},
		redis:     mr,
	}
	f.svc = NewService("org-1", f.preOrders, f.orders, f.customers, f.products, f.warmer, cache.NewRedisCache(client, nil), nil)
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func (f *fixture) expectCounts() {
	today := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	f.preOrders.On("CountByStatus", mock.Anything, preorder.StatusPending).Return(3, nil).Once()
	f.orders.On("SelectCount", mock.Anything, order.Filters{}).Return(7, nil).Once()
	f.orders.On("SelectCount", mock.Anything, mock.MatchedBy(func(fl order.Filters) bool {
		return fl.IgnoreDefaultFilters && fl.DateRange != nil && fl.DateRange.Start.Equal(today)
	})).Return(2, nil).Once()
	f.customers.On("Count", mock.Anything).Return(40, nil).Once()
	f.products.On("Count", mock.Anything).Return(12, nil).Once()
}

func TestGetMetrics_ComputesAndCaches(t *testing.T) {
	f := newFixture(t)
	f.expectCounts()

	first, err := f.svc.GetMetrics(context.Background())
	require.NoError(t, err)
	second, err := f.svc.GetMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &Metrics{
		PendingPreOrders: 3,
		OpenOrders:       7,
		OrdersForToday:   2,
		Customers:        40,
		Products:         12,
		GeneratedAt:      fixedNow,
	}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, cache.HomeMetricsTTL, f.redis.TTL("metrics:organizations:org-1"))
	assert.Len(t, f.warmer.calls, 2)
}

func TestGetMetrics_RecomputesAfterInvalidation(t *testing.T) {
	f := newFixture(t)
	f.expectCounts()
	_, err := f.svc.GetMetrics(context.Background())
	require.NoError(t, err)

	f.redis.Del("metrics:organizations:org-1")
	f.expectCounts()
	_, err = f.svc.GetMetrics(context.Background())
	require.NoError(t, err)

	f.customers.AssertNumberOfCalls(t, "Count", 2)
}

func TestGetMetrics_RepositoryError(t *testing.T) {
	f := newFixture(t)
	f.preOrders.On("CountByStatus", mock.Anything, preorder.StatusPending).Return(0, errors.New("timeout")).Once()

	_, err := f.svc.GetMetrics(context.Background())

	assert.Error(t, err)
	assert.False(t, f.redis.Exists("metrics:organizations:org-1"))
}
