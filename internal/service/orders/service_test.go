package orders

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/food-backoffice/internal/domain/customer"
	"github.com/hugohenrick/food-backoffice/internal/domain/order"
	"github.com/hugohenrick/food-backoffice/internal/domain/payment"
	"github.com/hugohenrick/food-backoffice/internal/domain/plan"
	"github.com/hugohenrick/food-backoffice/internal/domain/product"
	"github.com/hugohenrick/food-backoffice/internal/mocks"
	"github.com/hugohenrick/food-backoffice/internal/service/notification"
	"github.com/hugohenrick/food-backoffice/pkg/apperror"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type flagStub struct{ err error }

func (f flagStub) CheckFlag(context.Context, plan.FeatureName) error { return f.err }

type fixture struct {
	svc       *Service
	orders    *mocks.OrderRepository
	payments  *mocks.PaymentRepository
	products  *mocks.ProductRepository
	customers *mocks.CustomerRepository
	events    *mocks.Emitter
}

func newFixture(t *testing.T, gate FlagChecker) *fixture {
	t.Helper()
	f := &fixture{
		orders:    mocks.NewOrderRepository(t),
		payments:  mocks.NewPaymentRepository(t),
		products:  mocks.NewProductRepository(t),
		customers: mocks.NewCustomerRepository(t),
		events:    mocks.NewEmitter(t),
	}
	if gate == nil {
		gate = flagStub{}
	}
	f.svc = NewService("org-1", Repositories{
		Orders:    f.orders,
		Payments:  f.payments,
		Products:  f.products,
		Customers: f.customers,
	}, gate, f.events, nil)
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func pizza() *product.Product {
	return &product.Product{
		ID:        "p1",
		Name:      "Pizza",
		UnitPrice: 10,
		UnitCost:  4,
		Additionals: []product.Additional{{
			Name:        "Borda",
			MaxQuantity: 1,
			Items:       []product.AdditionalItem{{ItemID: "a1", Name: "Catupiry", UnitPrice: 2, UnitCost: 1}},
		}},
	}
}

func returnCreated() func(context.Context, *order.Order, float64) *order.Order {
	return func(_ context.Context, draft *order.Order, total float64) *order.Order {
		o := *draft
		o.ID = "o-1"
		o.TotalAmount = total
		o.PaymentStatus = order.PaymentPending
		return &o
	}
}

func TestService_Create_SnapshotsCatalogPrices(t *testing.T) {
	f := newFixture(t, nil)

	f.products.On("SelectByIDs", mock.Anything, []string{"p1"}).Return([]*product.Product{pizza()}, nil).Once()
	f.orders.On("Create", mock.Anything, mock.AnythingOfType("*order.Order"), 24.5).
		Return(returnCreated(), nil).Once()

	o, err := f.svc.Create(context.Background(), order.RequestOrder{
		Products: []order.RequestedProduct{{
			ProductID:   "p1",
			Quantity:    2,
			Additionals: []order.RequestedAdditional{{ItemID: "a1", Quantity: 1}},
		}},
		Delivery:   order.Delivery{Type: order.DeliveryTypeWithdrawal},
		Additional: 1,
		Discount:   0.5,
	})

	require.NoError(t, err)
	assert.Equal(t, 24.5, o.TotalAmount)
	assert.Equal(t, order.StatusPending, o.Status)
	require.Len(t, o.Products, 1)
	assert.Equal(t, "Pizza", o.Products[0].Name)
	assert.Equal(t, 10.0, o.Products[0].UnitPrice)
	assert.Equal(t, "Catupiry", o.Products[0].Additionals[0].Name)
	assert.Equal(t, fixedNow, o.OrderDate)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name     string
		req      order.RequestOrder
		catalog  []*product.Product
		wantKind apperror.Kind
	}{
		{
			name:     "sem produtos",
			req:      order.RequestOrder{},
			wantKind: apperror.KindUnprocessable,
		},
		{
			name:     "produto inexistente",
			req:      order.RequestOrder{Products: []order.RequestedProduct{{ProductID: "p1", Quantity: 1}}},
			catalog:  []*product.Product{},
			wantKind: apperror.KindNotFound,
		},
		{
			name: "adicional de outro produto",
			req: order.RequestOrder{Products: []order.RequestedProduct{{
				ProductID: "p1", Quantity: 1, Additionals: []order.RequestedAdditional{{ItemID: "zz", Quantity: 1}},
			}}},
			catalog:  []*product.Product{pizza()},
			wantKind: apperror.KindUnprocessable,
		},
		{
			name: "acima do máximo do grupo",
			req: order.RequestOrder{Products: []order.RequestedProduct{{
				ProductID: "p1", Quantity: 1, Additionals: []order.RequestedAdditional{{ItemID: "a1", Quantity: 2}},
			}}},
			catalog:  []*product.Product{pizza()},
			wantKind: apperror.KindUnprocessable,
		},
		{
			name: "entrega sem endereço",
			req: order.RequestOrder{
				Products: []order.RequestedProduct{{ProductID: "p1", Quantity: 1}},
				Delivery: order.Delivery{Type: order.DeliveryTypeDelivery},
			},
			catalog:  []*product.Product{pizza()},
			wantKind: apperror.KindUnprocessable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			if tt.catalog != nil {
				f.products.On("SelectByIDs", mock.Anything, mock.Anything).Return(tt.catalog, nil).Once()
			}

			_, err := f.svc.Create(context.Background(), tt.req)

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
		})
	}
}

func TestService_CreateFastOrder_OnePerDay(t *testing.T) {
	f := newFixture(t, nil)
	day := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	req := order.RequestOrder{OrderDate: day, Products: []order.RequestedProduct{{ProductID: "p1", Quantity: 3}}}

	f.orders.On("ExistsFastOrderOn", mock.Anything, day).Return(false, nil).Once()
	f.products.On("SelectByIDs", mock.Anything, []string{"p1"}).Return([]*product.Product{pizza()}, nil).Once()
	f.orders.On("Create", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
		return o.IsFastOrder && o.Status == order.StatusDone && o.Delivery.Type == order.DeliveryTypeWithdrawal
	}), 30.0).Return(returnCreated(), nil).Once()

	first, err := f.svc.CreateFastOrder(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, first.IsFastOrder)

	f.orders.On("ExistsFastOrderOn", mock.Anything, day).Return(true, nil).Once()

	_, err = f.svc.CreateFastOrder(context.Background(), req)

	require.Error(t, err)
	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))
	assert.Equal(t, "You cannot create two fast orders for the same day", err.Error())
}

func TestService_UpdateStatus_EmitsWhenDone(t *testing.T) {
	f := newFixture(t, nil)
	current := &order.Order{ID: "o-1", CustomerID: "c-1", Status: order.StatusInPreparation}
	done := *current
	done.Status = order.StatusDone

	f.orders.On("SelectByID", mock.Anything, "o-1", false).Return(current, nil).Once()
	f.orders.On("Update", mock.Anything, "o-1", mock.MatchedBy(func(p order.Patch) bool {
		return p.Status != nil && *p.Status == order.StatusDone
	})).Return(&done, nil).Once()
	f.customers.On("SelectByID", mock.Anything, "c-1").Return(&customer.Customer{
		ID: "c-1", Name: "Ted", Phone: &customer.Phone{InternationalCode: "55", LocalCode: "047", Number: "998899889"},
	}, nil).Once()
	f.events.On("Emit", mock.MatchedBy(func(e notification.Event) bool {
		return e.Kind == notification.KindOrderDone && e.Phone == "55047998899889" && e.OrderID == "o-1"
	})).Once()

	o, err := f.svc.UpdateStatus(context.Background(), "o-1", order.StatusDone)

	require.NoError(t, err)
	assert.Equal(t, order.StatusDone, o.Status)
}

func TestService_UpdateStatus_SameStatusIsNoop(t *testing.T) {
	f := newFixture(t, nil)
	current := &order.Order{ID: "o-1", Status: order.StatusDone}
	f.orders.On("SelectByID", mock.Anything, "o-1", false).Return(current, nil).Once()

	o, err := f.svc.UpdateStatus(context.Background(), "o-1", order.StatusDone)

	require.NoError(t, err)
	assert.Same(t, current, o)
	f.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_CanceledIsFinal(t *testing.T) {
	f := newFixture(t, nil)
	f.orders.On("SelectByID", mock.Anything, "o-1", false).Return(&order.Order{ID: "o-1", Status: order.StatusCanceled}, nil).Once()

	_, err := f.svc.UpdateStatus(context.Background(), "o-1", order.StatusPending)

	assert.True(t, apperror.IsConflict(err))
}

// memOrders guarda um pedido e seus pagamentos em memória, como o $lookup do repositório
type memOrders struct {
	order.Repository
	mu       sync.Mutex
	order    order.Order
	payments []payment.Payment
	writes   []order.PaymentStatus
}

func (m *memOrders) SelectByID(_ context.Context, id string, fastOrder bool) (*order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id != m.order.ID || fastOrder != m.order.IsFastOrder {
		return nil, apperror.NotFound("pedido", id)
	}
	o := m.order
	o.Payments = append([]payment.Payment(nil), m.payments...)
	return &o, nil
}

func (m *memOrders) UpdatePaymentStatus(_ context.Context, id string, status order.PaymentStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.order.PaymentStatus = status
	m.writes = append(m.writes, status)
	return nil
}

// memPayments insere no mesmo armazenamento; ready segura as inserções até todos lerem o pedido
type memPayments struct {
	payment.Repository
	orders *memOrders
	ready  *sync.WaitGroup
}

func (p *memPayments) Create(_ context.Context, pay *payment.Payment) error {
	if p.ready != nil {
		p.ready.Done()
		p.ready.Wait()
	}
	p.orders.mu.Lock()
	defer p.orders.mu.Unlock()
	p.orders.payments = append(p.orders.payments, *pay)
	return nil
}

func newMemService(o order.Order, existing []payment.Payment, ready *sync.WaitGroup) (*Service, *memOrders) {
	store := &memOrders{order: o, payments: existing}
	svc := NewService("org-1", Repositories{
		Orders:   store,
		Payments: &memPayments{orders: store, ready: ready},
	}, flagStub{}, nil, nil)
	svc.now = func() time.Time { return fixedNow }
	return svc, store
}

func TestService_AddPayment_DerivesStatus(t *testing.T) {
	tests := []struct {
		name       string
		existing   []payment.Payment
		amount     float64
		wantStatus order.PaymentStatus
		wantWrites []order.PaymentStatus
	}{
		{"primeiro pagamento parcial", nil, 10, order.PaymentPartiallyPaid, []order.PaymentStatus{order.PaymentPartiallyPaid}},
		{"quita o pedido", []payment.Payment{{Amount: 20}}, 10, order.PaymentPaid, []order.PaymentStatus{order.PaymentPaid}},
		{"pago a maior", []payment.Payment{{Amount: 25}}, 10, order.PaymentPaid, []order.PaymentStatus{order.PaymentPaid}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newMemService(order.Order{ID: "o-1", TotalAmount: 30, Status: order.StatusDone, PaymentStatus: order.PaymentPending}, tt.existing, nil)

			updated, err := svc.AddPayment(context.Background(), "o-1", false, PaymentInput{Method: payment.MethodPix, Amount: tt.amount})

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, updated.PaymentStatus)
			assert.Len(t, updated.Payments, len(tt.existing)+1)
			assert.Equal(t, tt.wantWrites, store.writes)
		})
	}
}

func TestService_AddPayment_ConcurrentPaymentsSettleOrder(t *testing.T) {
	var ready sync.WaitGroup
	ready.Add(2)
	svc, store := newMemService(order.Order{ID: "o-1", TotalAmount: 30, Status: order.StatusDone, PaymentStatus: order.PaymentPending}, nil, &ready)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.AddPayment(context.Background(), "o-1", false, PaymentInput{Method: payment.MethodCash, Amount: 15})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Len(t, store.payments, 2)
	assert.Equal(t, order.PaymentPaid, store.order.PaymentStatus)
}

func TestService_AddPayment_CanceledOrder(t *testing.T) {
	svc, store := newMemService(order.Order{ID: "o-1", TotalAmount: 30, Status: order.StatusCanceled}, nil, nil)

	_, err := svc.AddPayment(context.Background(), "o-1", false, PaymentInput{Method: payment.MethodPix, Amount: 10})

	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.Empty(t, store.payments)
}

func TestService_AddPayment_InvalidMethod(t *testing.T) {
	f := newFixture(t, nil)
	f.orders.On("SelectByID", mock.Anything, "o-1", false).Return(&order.Order{ID: "o-1", TotalAmount: 30}, nil).Once()

	_, err := f.svc.AddPayment(context.Background(), "o-1", false, PaymentInput{Method: "CHEQUE", Amount: 10})

	assert.Equal(t, apperror.KindUnprocessable, apperror.KindOf(err))
}

func TestService_Calendar(t *testing.T) {
	f := newFixture(t, nil)
	d1 := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)

	f.orders.On("SelectAll", mock.Anything, mock.MatchedBy(func(fl order.Filters) bool {
		return fl.IgnoreDefaultFilters && fl.DateRange != nil && fl.DateRange.Start.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	}), domain.Pagination{}).Return([]*order.Order{
		{ID: "a", PreparationDate: d1, TotalAmount: 10.1},
		{ID: "b", PreparationDate: d1, TotalAmount: 0.2},
		{ID: "c", PreparationDate: d2, TotalAmount: 5},
		{ID: "d", PreparationDate: d2, TotalAmount: 99, Status: order.StatusCanceled},
	}, nil).Once()

	days, err := f.svc.Calendar(context.Background(), 6, 2024)

	require.NoError(t, err)
	assert.Equal(t, []CalendarDay{
		{Date: "2024-06-01", Orders: 1, TotalAmount: 5},
		{Date: "2024-06-03", Orders: 2, TotalAmount: 10.3},
	}, days)
}

func TestService_Calendar_RequiresFeature(t *testing.T) {
	f := newFixture(t, flagStub{err: apperror.Unauthorized("DISPLAY_CALENDAR desabilitado")})

	_, err := f.svc.Calendar(context.Background(), 6, 2024)

	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}

func TestService_List(t *testing.T) {
	f := newFixture(t, nil)
	filters := order.Filters{Status: order.StatusPending}
	page := domain.NewPagination(2, 5)

	f.orders.On("SelectAll", mock.Anything, filters, page).Return([]*order.Order{{ID: "o-6"}}, nil).Once()
	f.orders.On("SelectCount", mock.Anything, filters).Return(6, nil).Once()

	items, total, err := f.svc.List(context.Background(), filters, page)

	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 6, total)
}
