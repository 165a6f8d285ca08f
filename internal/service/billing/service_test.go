package billing

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/food-backoffice/internal/domain/expense"
	"github.com/hugohenrick/food-backoffice/internal/domain/order"
	"github.com/hugohenrick/food-backoffice/internal/domain/payment"
	"github.com/hugohenrick/food-backoffice/internal/domain/plan"
	"github.com/hugohenrick/food-backoffice/internal/domain/tag"
	"github.com/hugohenrick/food-backoffice/internal/infrastructure/cache"
	"github.com/hugohenrick/food-backoffice/internal/mocks"
	"github.com/hugohenrick/food-backoffice/pkg/apperror"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

type flagStub struct{ err error }

func (f flagStub) CheckFlag(context.Context, plan.FeatureName) error { return f.err }

type fixture struct {
	svc      *Service
	orders   *mocks.OrderRepository
	expenses *mocks.ExpenseRepository
	tags     *mocks.TagRepository
	redis    *miniredis.Miniredis
}

func newFixture(t *testing.T, gate FlagChecker) *fixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	f := &fixture{
		orders:   mocks.NewOrderRepository(t),
		expenses: mocks.NewExpenseRepository(t),
		tags:     mocks.NewTagRepository(t),
		redis:    mr,
	}
	if gate == nil {
		gate = flagStub{}
	}
	f.svc = NewService("org-1", f.orders, f.expenses, f.tags, gate, cache.NewRedisCache(client, nil), nil)
	f.svc.now = func() time.Time { return time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC) }
	return f
}

func pay(method payment.Method, amount float64) payment.Payment {
	return payment.Payment{Method: method, Amount: amount}
}

func scenarioOrders() []*order.Order {
	return []*order.Order{
		{ID: "o1", TotalAmount: 30, Payments: []payment.Payment{
			pay(payment.MethodCash, 10), pay(payment.MethodPix, 10), pay(payment.MethodCreditCard, 5),
		}},
		{ID: "o2", TotalAmount: 20, Payments: []payment.Payment{pay(payment.MethodDebitCard, 20)}},
	}
}

func scenarioExpenses() []*expense.Expense {
	return []*expense.Expense{{ID: "e1", TotalPaid: 5}, {ID: "e2", TotalPaid: 7.5}}
}

func monthMatcher(month, year int) interface{} {
	want := domain.MonthRange(month, year)
	return mock.MatchedBy(func(r domain.DateRange) bool { return r == want })
}

func TestGetBillingForDashboard_Classification(t *testing.T) {
	f := newFixture(t, nil)

	f.orders.On("SelectAllWithoutFilters", mock.Anything, monthMatcher(3, 2024)).Return(scenarioOrders(), nil).Once()
	f.expenses.On("SelectAll", mock.Anything, mock.Anything, domain.Pagination{}).Return(scenarioExpenses(), nil).Once()

	b, err := f.svc.GetBillingForDashboard(context.Background(), 3, 2024)

	require.NoError(t, err)
	assert.Equal(t, &Billing{
		Month:              3,
		Year:               2024,
		TotalAmount:        50,
		TotalExpanses:      12.5,
		PaymentReceived:    45,
		CashReceived:       10,
		PixReceived:        10,
		CreditCardReceived: 5,
		DebitCardReceived:  20,
		ZelleReceived:      0,
		PendingPayments:    5,
	}, b)
}

func TestGetBillingForDashboard_UsesCache(t *testing.T) {
	f := newFixture(t, nil)

	f.orders.On("SelectAllWithoutFilters", mock.Anything, mock.Anything).Return(scenarioOrders(), nil).Once()
	f.expenses.On("SelectAll", mock.Anything, mock.Anything, mock.Anything).Return(scenarioExpenses(), nil).Once()

	first, err := f.svc.GetBillingForDashboard(context.Background(), 3, 2024)
	require.NoError(t, err)
	second, err := f.svc.GetBillingForDashboard(context.Background(), 3, 2024)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, cache.BillingDashboardTTL, f.redis.TTL("billing:org-1:dashboard:3/2024"))
}

func TestGetBillingForDashboard_RequiresFeature(t *testing.T) {
	f := newFixture(t, flagStub{err: apperror.Unauthorized("DISPLAY_DASHBOARD desabilitado")})

	_, err := f.svc.GetBillingForDashboard(context.Background(), 3, 2024)

	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}

func TestGetBillingForDashboard_DecemberRollsYear(t *testing.T) {
	f := newFixture(t, nil)

	f.orders.On("SelectAllWithoutFilters", mock.Anything, mock.MatchedBy(func(r domain.DateRange) bool {
		return r.End.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	})).Return([]*order.Order{}, nil).Once()
	f.expenses.On("SelectAll", mock.Anything, mock.Anything, mock.Anything).Return([]*expense.Expense{}, nil).Once()

	b, err := f.svc.GetBillingForDashboard(context.Background(), 12, 2024)

	require.NoError(t, err)
	assert.True(t, b.IsEmpty())
}

func TestAggregate_PendingIgnoresOverpayment(t *testing.T) {
	orders := []*order.Order{
		{TotalAmount: 0.1, Payments: []payment.Payment{pay(payment.MethodZelle, 0.1)}},
		{TotalAmount: 0.2},
		{TotalAmount: 10, Payments: []payment.Payment{pay(payment.MethodPix, 20)}},
	}

	b := Aggregate(1, 2024, orders, nil)

	assert.Equal(t, 10.3, b.TotalAmount)
	assert.Equal(t, 0.2, b.PendingPayments)
	assert.Equal(t, 0.1, b.ZelleReceived)
	assert.Equal(t, 20.1, b.PaymentReceived)
}

func TestGetMonthlyBillings(t *testing.T) {
	f := newFixture(t, nil)

	f.orders.On("SelectAllWithoutFilters", mock.Anything, monthMatcher(1, 2024)).Return([]*order.Order{{TotalAmount: 1}}, nil).Once()
	f.orders.On("SelectAllWithoutFilters", mock.Anything, monthMatcher(2, 2024)).Return([]*order.Order{{TotalAmount: 2}}, nil).Once()
	f.orders.On("SelectAllWithoutFilters", mock.Anything, monthMatcher(3, 2024)).Return([]*order.Order{{TotalAmount: 3}}, nil).Once()
	f.expenses.On("SelectAll", mock.Anything, mock.Anything, mock.Anything).Return([]*expense.Expense{}, nil).Times(3)

	billings, err := f.svc.GetMonthlyBillings(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, billings, 3)
	assert.Equal(t, 1, billings[0].Month)
	assert.Equal(t, 1.0, billings[0].TotalAmount)
	assert.Equal(t, 3, billings[2].Month)
	assert.Equal(t, 3.0, billings[2].TotalAmount)
}

func TestGetMonthlyBillings_OutOfRange(t *testing.T) {
	f := newFixture(t, nil)

	for _, n := range []int{0, 13} {
		_, err := f.svc.GetMonthlyBillings(context.Background(), n)
		assert.Equal(t, apperror.KindUnprocessable, apperror.KindOf(err))
	}
}

func TestGetBestSellingProducts_TieBreakByName(t *testing.T) {
	f := newFixture(t, nil)
	f.orders.On("SelectAllWithoutFilters", mock.Anything, mock.Anything).Return([]*order.Order{
		{Products: []order.StoredProduct{
			{ProductID: "p2", Name: "Pastel", UnitPrice: 5, Quantity: 3},
			{ProductID: "p1", Name: "Coxinha", UnitPrice: 4, Quantity: 1},
		}},
		{Products: []order.StoredProduct{
			{ProductID: "p1", Name: "Coxinha", UnitPrice: 4, Quantity: 2},
			{ProductID: "p3", Name: "Suco", UnitPrice: 6, Quantity: 5},
		}},
	}, nil).Once()

	ranking, err := f.svc.GetBestSellingProducts(context.Background(), 3, 2024)

	require.NoError(t, err)
	require.Len(t, ranking, 3)
	assert.Equal(t, "Suco", ranking[0].Name)
	assert.Equal(t, "Coxinha", ranking[1].Name)
	assert.Equal(t, 3, ranking[1].Quantity)
	assert.Equal(t, 12.0, ranking[1].TotalAmount)
	assert.Equal(t, "Pastel", ranking[2].Name)
}

func TestGetExpansesCategories(t *testing.T) {
	f := newFixture(t, nil)
	f.expenses.On("SelectAll", mock.Anything, mock.Anything, mock.Anything).Return([]*expense.Expense{
		{TotalPaid: 100, Tags: []string{"t-aluguel"}},
		{TotalPaid: 30, Tags: []string{"t-gas", "t-apagada"}},
		{TotalPaid: 20},
	}, nil).Once()
	f.tags.On("SelectByIDs", mock.Anything, []string{"t-aluguel", "t-gas", "t-apagada"}).Return([]*tag.Tag{
		{ID: "t-aluguel", Name: "Aluguel"},
		{ID: "t-gas", Name: "Gás"},
	}, nil).Once()

	categories, err := f.svc.GetExpansesCategories(context.Background(), 3, 2024)

	require.NoError(t, err)
	assert.Equal(t, []ExpenseCategory{
		{TagID: "t-aluguel", Name: "Aluguel", TotalPaid: 100, Count: 1},
		{TagID: "", Name: "Sem categoria", TotalPaid: 50, Count: 2},
		{TagID: "t-gas", Name: "Gás", TotalPaid: 30, Count: 1},
	}, categories)
}

func TestGetProductsProfit(t *testing.T) {
	f := newFixture(t, nil)
	f.orders.On("SelectAllWithoutFilters", mock.Anything, mock.Anything).Return([]*order.Order{
		{Products: []order.StoredProduct{
			{ProductID: "p1", Name: "Pizza", UnitPrice: 40, UnitCost: 15, Quantity: 2, Additionals: []order.StoredAdditionalItem{
				{ItemID: "a1", UnitPrice: 5, UnitCost: 2, Quantity: 1},
			}},
			{ProductID: "p2", Name: "Refrigerante", UnitPrice: 8, UnitCost: 3, Quantity: 4},
		}},
	}, nil).Once()

	profits, err := f.svc.GetProductsProfit(context.Background(), 3, 2024)

	require.NoError(t, err)
	require.Len(t, profits, 2)
	assert.Equal(t, ProductProfit{ProductID: "p1", Name: "Pizza", Quantity: 2, Revenue: 90, Cost: 34, Profit: 56}, profits[0])
	assert.Equal(t, ProductProfit{ProductID: "p2", Name: "Refrigerante", Quantity: 4, Revenue: 32, Cost: 12, Profit: 20}, profits[1])
}

func TestGetDailySales_ZeroFilled(t *testing.T) {
	f := newFixture(t, nil)
	f.orders.On("SelectAllWithoutFilters", mock.Anything, mock.Anything).Return([]*order.Order{
		{OrderDate: time.Date(2024, 2, 3, 12, 0, 0, 0, time.UTC), TotalAmount: 10},
		{OrderDate: time.Date(2024, 2, 3, 20, 0, 0, 0, time.UTC), TotalAmount: 5.5},
		{OrderDate: time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC), TotalAmount: 7},
	}, nil).Once()

	sales, err := f.svc.GetDailySales(context.Background(), 2, 2024)

	require.NoError(t, err)
	require.Len(t, sales, 29)
	assert.Equal(t, DailySale{Day: 1, Date: "2024-02-01"}, sales[0])
	assert.Equal(t, DailySale{Day: 3, Date: "2024-02-03", Orders: 2, TotalAmount: 15.5}, sales[2])
	assert.Equal(t, 7.0, sales[28].TotalAmount)
}
